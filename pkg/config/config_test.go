package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	v := viper.New()
	v.Set("JWT_SECRET", "secreto")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, 2*time.Hour, cfg.JWT.SessionTTL(), "la sesión dura 2 horas por defecto")
	assert.Equal(t, 10*time.Minute, cfg.Link.TTL(), "el enlace dura 10 minutos por defecto")
	assert.Equal(t, 15*24*time.Hour, cfg.Plan.TrialPeriod(), "la prueba gratuita dura 15 días")
	assert.Equal(t, int64(0), cfg.Plan.TrialPlanID)
	assert.False(t, cfg.Redis.Enabled())
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestFromViper_SinSecret_Error(t *testing.T) {
	_, err := fromViper(viper.New())
	assert.Error(t, err)
}

func TestFromViper_ValoresComoString(t *testing.T) {
	v := viper.New()
	v.Set("JWT_SECRET", "secreto")
	v.Set("PLAN_TRIAL_DAYS", "14")
	v.Set("LINK_BASE_URL", "https://app.example.com/")

	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, 14, cfg.Plan.TrialDays)
	assert.Equal(t, "https://app.example.com", cfg.Link.BaseURL)
}

func TestFromViper_PoolDB(t *testing.T) {
	v := viper.New()
	v.Set("JWT_SECRET", "secreto")

	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.DB.MinConns)
	assert.False(t, cfg.DB.ForceIPv4)

	v.Set("DB_FORCE_IPV4", "true")
	v.Set("DB_MIN_CONNS", "4")
	cfg, err = fromViper(v)
	require.NoError(t, err)
	assert.True(t, cfg.DB.ForceIPv4)
	assert.Equal(t, 4, cfg.DB.MinConns)

	v.Set("DB_FORCE_IPV4", "quizás")
	cfg, err = fromViper(v)
	require.NoError(t, err)
	assert.False(t, cfg.DB.ForceIPv4, "valor ilegible = valor por defecto")
}

func TestDBConfig_DSN_EscapaPassword(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss/word", DBName: "ibeauty", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%2Fword@db:5432/ibeauty?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://override"
	assert.Equal(t, "postgres://override", c.ConnectionString())
}
