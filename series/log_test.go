package series

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func TestRollingLogsCorrections(t *testing.T) {
	l, hook := test.NewNullLogger()
	l.SetLevel(logrus.DebugLevel)
	SetLogger(l)
	defer SetLogger(nil)

	s := Must(seq(3), []float64{1, 2, 3})
	if _, err := s.Rolling(5, Sum{}, nil); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var padded bool
	for _, e := range hook.AllEntries() {
		if e.Message == "Padded series shorter than window" {
			padded = true
			if e.Data["window"] != 5 {
				t.Errorf("Expected window field 5, got %v", e.Data["window"])
			}
		}
	}
	if !padded {
		t.Error("Expected a debug entry for the padding correction")
	}
}

func TestSetLoggerNilRestoresStandardLogger(t *testing.T) {
	SetLogger(nil)
	if logger() != logrus.StandardLogger() {
		t.Error("Expected the standard logger after SetLogger(nil)")
	}
}
