package config

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keepmind9/onechat/pkg/onechat"
)

var onechatEnvKeys = []string{
	"ONECHAT_TOKEN",
	"ONECHAT_TO",
	"ONECHAT_BOT_ID",
	"ONECHAT_BASE_URL",
	"ONECHAT_CONNECT_TIMEOUT",
	"ONECHAT_READ_TIMEOUT",
	"ONECHAT_LOG_LEVEL",
	"ONECHAT_LOG_FORMAT",
	"ONECHAT_LOG_FILE",
}

// isolateEnv unsets every ONECHAT_* variable for the duration of the test
func isolateEnv(t *testing.T) {
	t.Helper()
	for _, key := range onechatEnvKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "onechat.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_ValidConfig_ReturnsConfigStruct(t *testing.T) {
	isolateEnv(t)
	path := writeConfig(t, `
token: "abc1234567890"
default_to: "U1"
default_bot_id: "B1"
http:
  connect_timeout: 2s
  read_timeout: 30s
logging:
  level: debug
  format: text
`)

	config, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "abc1234567890", config.Token)
	assert.Equal(t, "U1", config.DefaultTo)
	assert.Equal(t, "B1", config.DefaultBotID)
	assert.Equal(t, "https://chat-api.one.th", config.BaseURL)
	assert.Equal(t, "2s", config.HTTP.ConnectTimeout)
	assert.Equal(t, "30s", config.HTTP.ReadTimeout)
	assert.Equal(t, "debug", config.Logging.Level)
	assert.Equal(t, "text", config.Logging.Format)
}

func TestLoadConfig_DefaultsFilled(t *testing.T) {
	isolateEnv(t)
	path := writeConfig(t, `token: "abc"`)

	config, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "https://chat-api.one.th", config.BaseURL)
	assert.Equal(t, "5s", config.HTTP.ConnectTimeout)
	assert.Equal(t, "15s", config.HTTP.ReadTimeout)
	assert.Equal(t, "info", config.Logging.Level)
	assert.Equal(t, 100, config.Logging.MaxSize)
	assert.Equal(t, 5, config.Logging.MaxBackups)
	assert.Equal(t, 30, config.Logging.MaxAge)
}

func TestLoadConfig_EnvExpansion_ExpandsVariables(t *testing.T) {
	isolateEnv(t)
	t.Setenv("TEST_ONECHAT_SECRET", "expanded-token-123")
	path := writeConfig(t, `token: "${TEST_ONECHAT_SECRET}"`)

	config, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "expanded-token-123", config.Token)
}

func TestLoadConfig_MissingEnvVar_ReturnsError(t *testing.T) {
	isolateEnv(t)
	path := writeConfig(t, `token: "${TEST_ONECHAT_DEFINITELY_UNSET}"`)

	_, err := LoadConfig(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "TEST_ONECHAT_DEFINITELY_UNSET")
}

func TestLoadConfig_EnvironmentOverridesFile(t *testing.T) {
	isolateEnv(t)
	path := writeConfig(t, `
token: "file-token"
default_to: "U1"
logging:
  level: info
`)
	t.Setenv("ONECHAT_TOKEN", "env-token")
	t.Setenv("ONECHAT_TO", "U2")
	t.Setenv("ONECHAT_READ_TIMEOUT", "45s")
	t.Setenv("ONECHAT_LOG_LEVEL", "error")

	config, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "env-token", config.Token)
	assert.Equal(t, "U2", config.DefaultTo)
	assert.Equal(t, "45s", config.HTTP.ReadTimeout)
	assert.Equal(t, "error", config.Logging.Level)
}

func TestLoadConfig_EnvironmentOnly(t *testing.T) {
	isolateEnv(t)
	t.Setenv("ONECHAT_TOKEN", "Bearer env-token")
	t.Setenv("ONECHAT_BOT_ID", "B9")

	config, err := LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, "env-token", config.Token, "bearer prefix is stripped")
	assert.Equal(t, "B9", config.DefaultBotID)
}

func TestLoadConfig_DotEnvFile(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("ONECHAT_TOKEN=dotenv-token\nONECHAT_TO=U7\n"), 0644))
	chdir(t, dir)

	config, err := LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, "dotenv-token", config.Token)
	assert.Equal(t, "U7", config.DefaultTo)
}

func TestLoadConfig_FileNotFound_ReturnsError(t *testing.T) {
	isolateEnv(t)

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_InvalidYAML_ReturnsError(t *testing.T) {
	isolateEnv(t)
	path := writeConfig(t, "token: [unclosed")

	_, err := LoadConfig(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr string
	}{
		{
			name:    "missing token",
			config:  Config{},
			wantErr: "token is required",
		},
		{
			name:    "bearer only token",
			config:  Config{Token: "Bearer "},
			wantErr: "token is required",
		},
		{
			name:    "base url without scheme",
			config:  Config{Token: "t", BaseURL: "chat-api.one.th"},
			wantErr: "base_url",
		},
		{
			name:    "unparseable connect timeout",
			config:  Config{Token: "t", HTTP: HTTPConfig{ConnectTimeout: "soon"}},
			wantErr: "http.connect_timeout",
		},
		{
			name:    "negative read timeout",
			config:  Config{Token: "t", HTTP: HTTPConfig{ReadTimeout: "-1s"}},
			wantErr: "http.read_timeout must be positive",
		},
		{
			name:    "invalid log level",
			config:  Config{Token: "t", Logging: LoggingConfig{Level: "loud"}},
			wantErr: "logging.level",
		},
		{
			name:    "invalid log format",
			config:  Config{Token: "t", Logging: LoggingConfig{Format: "xml"}},
			wantErr: "logging.format",
		},
		{
			name:   "minimal valid",
			config: Config{Token: "t"},
		},
		{
			name:   "custom base url",
			config: Config{Token: "t", BaseURL: "http://localhost:8080"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateConfig(&tt.config)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_Accessors(t *testing.T) {
	config := &Config{
		Token:        "t",
		DefaultTo:    "U1",
		DefaultBotID: "B1",
		HTTP:         HTTPConfig{ConnectTimeout: "3s", ReadTimeout: "20s"},
		Logging: LoggingConfig{
			Level:         "warn",
			Format:        "json",
			File:          "/tmp/onechat.log",
			MaxSize:       10,
			MaxBackups:    2,
			MaxAge:        7,
			Compress:      true,
			EnableConsole: true,
		},
	}

	connect, read := config.Timeouts()
	assert.Equal(t, 3*time.Second, connect)
	assert.Equal(t, 20*time.Second, read)

	assert.Equal(t, onechat.Defaults{To: "U1", BotID: "B1"}, config.Defaults())

	lc := config.LoggerConfig()
	assert.Equal(t, "warn", lc.Level)
	assert.Equal(t, "json", lc.Format)
	assert.Equal(t, "/tmp/onechat.log", lc.File)
	assert.Equal(t, 10, lc.MaxSize)
	assert.Equal(t, 2, lc.MaxBackups)
	assert.Equal(t, 7, lc.MaxAge)
	assert.True(t, lc.Compress)
	assert.True(t, lc.EnableConsole)
}

func TestConfig_ClientOptionsTargetBaseURL(t *testing.T) {
	var gotPath, gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"success"}`))
	}))
	t.Cleanup(server.Close)

	config := &Config{Token: "t0k3n", BaseURL: server.URL + "/"}
	require.NoError(t, validateConfig(config))

	quiet := logrus.New()
	quiet.SetOutput(os.Stderr)
	quiet.SetLevel(logrus.PanicLevel)

	client := onechat.New(config.Token, config.ClientOptions(quiet)...)
	res := client.SendMessage(context.Background(), "U1", "B1", "hi", "")

	assert.True(t, res.Succeeded(), res.Message)
	assert.Equal(t, "/message/api/v1/push_message", gotPath)
	assert.Equal(t, "Bearer t0k3n", gotAuth)
}

func TestFindConfigFile_WorkingDirectoryFirst(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "onechat.yaml"), []byte("token: x\n"), 0644))
	chdir(t, dir)

	assert.Equal(t, "onechat.yaml", FindConfigFile())
}

func TestDefaultLocations(t *testing.T) {
	locations := DefaultLocations()

	require.NotEmpty(t, locations)
	assert.Equal(t, "onechat.yaml", locations[0])
	assert.Equal(t, "/etc/onechat/config.yaml", locations[len(locations)-1])
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
