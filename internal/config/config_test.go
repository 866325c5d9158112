package config

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	config := NewConfig()

	// check default values
	require.Equal(t, "localhost:8080", config.Addr)
	require.Equal(t, "http://localhost:8080", config.BaseURL)
	require.Equal(t, 15, config.Timeout)
	require.Equal(t, "", config.TenantStorageFile)
	require.Equal(t, "", config.DBConnection)
	require.False(t, config.EnableHTTPS)
}

func TestInitWithEnvVariables(t *testing.T) {
	e1 := os.Setenv("SERVER_ADDRESS", "localhost:9090")
	e2 := os.Setenv("BASE_URL", "http://localhost:9090")
	e3 := os.Setenv("FILE_STORAGE_PATH", "/tmp/tenants")
	e4 := os.Setenv("DATABASE_DSN", "user:pass@/dbname")
	require.NoError(t, e1)
	require.NoError(t, e2)
	require.NoError(t, e3)
	require.NoError(t, e4)

	defer func() {
		if e := os.Unsetenv("SERVER_ADDRESS"); e != nil {
			fmt.Println("os.Unsetenv(\"SERVER_ADDRESS\") error")
		}
	}()
	defer func() {
		if e := os.Unsetenv("BASE_URL"); e != nil {
			fmt.Println("os.Unsetenv(\"BASE_URL\") error")
		}
	}()
	defer func() {
		if e := os.Unsetenv("FILE_STORAGE_PATH"); e != nil {
			fmt.Println("os.Unsetenv(\"FILE_STORAGE_PATH\") error")
		}
	}()
	defer func() {
		if e := os.Unsetenv("DATABASE_DSN"); e != nil {
			fmt.Println("os.Unsetenv(\"DATABASE_DSN\") error")
		}
	}()

	config := NewConfig()
	err := Init(config)

	require.NoError(t, err)
	require.Equal(t, "localhost:9090", config.Addr)
	require.Equal(t, "http://localhost:9090", config.BaseURL)
	require.Equal(t, "/tmp/tenants", config.TenantStorageFile)
	require.Equal(t, "user:pass@/dbname", config.DBConnection)
}
