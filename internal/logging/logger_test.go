package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestWith_AttachesFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := FromZap(zap.New(core)).With("component", "pets")

	l.Info("created", "id", 7)
	l.Warn("slow")

	entries := logs.All()
	if assert.Len(t, entries, 2) {
		fields := entries[0].ContextMap()
		assert.Equal(t, "pets", fields["component"])
		assert.EqualValues(t, 7, fields["id"])
		assert.Equal(t, zap.WarnLevel, entries[1].Level)
	}
}

func TestAsZap_ForeignLoggerIsNop(t *testing.T) {
	assert.NotNil(t, AsZap(nopForeign{}))
}

type nopForeign struct{}

func (nopForeign) Info(string, ...any)  {}
func (nopForeign) Warn(string, ...any)  {}
func (nopForeign) Error(string, ...any) {}
func (nopForeign) Debug(string, ...any) {}
func (n nopForeign) With(...any) Logger { return n }
