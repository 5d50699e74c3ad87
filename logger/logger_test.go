package logger

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestInitializeAndSetDebug(t *testing.T) {
	Initialize()
	if got := zerolog.GlobalLevel(); got != zerolog.InfoLevel {
		t.Errorf("global level after Initialize = %v, want info", got)
	}

	SetDebug()
	if got := zerolog.GlobalLevel(); got != zerolog.DebugLevel {
		t.Errorf("global level after SetDebug = %v, want debug", got)
	}

	if Get() == nil {
		t.Error("Get() = nil")
	}
}
