package security

import (
	"strings"

	"github.com/elsonpulikkan96/reborncloud.online/model"
)

// Tablet markers are checked before mobile ones: most tablet user agents
// also carry "Mobile" or an Android token.
var tabletMarkers = []string{"ipad", "tablet", "kindle", "silk", "playbook"}

var mobileMarkers = []string{
	"mobile", "iphone", "ipod", "android", "blackberry",
	"windows phone", "opera mini", "iemobile",
}

// DetectDevice classifies a user agent as desktop, mobile, or tablet using
// substring matching. An empty user agent is unknown. Anything that is not
// recognisably mobile or tablet counts as desktop.
func DetectDevice(userAgent string) model.DeviceType {
	if strings.TrimSpace(userAgent) == "" {
		return model.DeviceUnknown
	}

	uaLower := strings.ToLower(userAgent)

	for _, marker := range tabletMarkers {
		if strings.Contains(uaLower, marker) {
			return model.DeviceTablet
		}
	}

	// "Android" without "Mobile" is a tablet by convention.
	if strings.Contains(uaLower, "android") && !strings.Contains(uaLower, "mobile") {
		return model.DeviceTablet
	}

	for _, marker := range mobileMarkers {
		if strings.Contains(uaLower, marker) {
			return model.DeviceMobile
		}
	}

	return model.DeviceDesktop
}
