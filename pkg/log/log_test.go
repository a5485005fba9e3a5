package log

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestConfigure(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	assert.Equal(t, logrus.DebugLevel, Configure("debug"))
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	assert.Equal(t, logrus.InfoLevel, Configure("barulhento"))
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestWithFields_Desenvolvimento(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	base := &logger{entry: logrus.NewEntry(logrus.New())}

	filtered := base.WithFields(Fields{"tenant_id": "t1", "ruido": 1}).(*logger)
	assert.Equal(t, logrus.Fields{"tenant_id": "t1"}, filtered.entry.Data)

	same := base.WithField("ruido", 1)
	assert.Same(t, base, same)
}

func TestWithFields_Producao(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	base := &logger{entry: logrus.NewEntry(logrus.New())}
	full := base.WithFields(Fields{"tenant_id": "t1", "ruido": 1}).(*logger)

	assert.Len(t, full.entry.Data, 2)
}
