package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_USER", "chef")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "meals")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("APP_TIMEZONE", "Europe/Moscow")

	assert.Equal(t, "host=db user=chef password=secret dbname=meals port=6543 sslmode=disable TimeZone=Europe/Moscow", DSN())
}

func TestBackoff(t *testing.T) {
	assert.Equal(t, time.Second, backoff(1))
	assert.Equal(t, 8*time.Second, backoff(4))
	assert.Equal(t, maxBackoff, backoff(9))
}

func TestClockUsesConfiguredZone(t *testing.T) {
	t.Setenv("APP_TIMEZONE", "Asia/Tokyo")
	assert.Equal(t, "Asia/Tokyo", Clock()().Location().String())

	t.Setenv("APP_TIMEZONE", "Nowhere/Special")
	assert.Equal(t, time.UTC, Clock()().Location())
}
