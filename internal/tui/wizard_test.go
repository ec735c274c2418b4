package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/vendorsum/internal/config"
	"github.com/vvka-141/vendorsum/pkg/vendorsum"
)

type mockTester struct {
	info   string
	err    error
	called bool
	gotCfg *vendorsum.ConnectionConfig
}

func (m *mockTester) TestConnection(_ context.Context, cfg *vendorsum.ConnectionConfig) (string, error) {
	m.called = true
	m.gotCfg = cfg
	return m.info, m.err
}

func drainCmds(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if msg == nil {
		return nil
	}
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, drainCmds(c)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func isQuitCmd(cmd tea.Cmd) bool {
	for _, msg := range drainCmds(cmd) {
		if _, ok := msg.(tea.QuitMsg); ok {
			return true
		}
	}
	return false
}

func asWizard(t *testing.T, m tea.Model) ConfigWizard {
	t.Helper()
	w, ok := m.(ConfigWizard)
	require.True(t, ok, "expected ConfigWizard, got %T", m)
	return w
}

func press(t *testing.T, m tea.Model, keys ...string) (ConfigWizard, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		m, cmd = m.Update(keyMsg(k))
	}
	return asWizard(t, m), cmd
}

func typeString(t *testing.T, m tea.Model, s string) ConfigWizard {
	t.Helper()
	for _, r := range s {
		m, _ = m.Update(keyMsg(string(r)))
	}
	return asWizard(t, m)
}

// finishTest runs the pending connection test and feeds its result back.
func finishTest(t *testing.T, w ConfigWizard, cmd tea.Cmd) ConfigWizard {
	t.Helper()
	require.Equal(t, stepTest, w.step)
	for _, msg := range drainCmds(cmd) {
		if res, ok := msg.(testResultMsg); ok {
			m, _ := w.Update(res)
			return asWizard(t, m)
		}
	}
	t.Fatal("no connection test result")
	return w
}

func TestConfigWizard_InitialState(t *testing.T) {
	w := NewConfigWizard(nil)

	assert.Equal(t, stepProvider, w.step)
	assert.Equal(t, 0, w.providerIdx)
	assert.Equal(t, "30m", w.timeouts[w.timeoutIdx])
}

func TestConfigWizard_SeedSelectsProviderAndTimeout(t *testing.T) {
	seed := &config.ProjectConfig{
		Connection: config.ConnectionConfig{Host: "db.aws", AuthMethod: "aws"},
		Timeout:    "1h0m0s",
	}
	w := NewConfigWizard(seed)

	assert.Equal(t, providerAWS, w.provider().ID)
	assert.Equal(t, "1h", w.timeouts[w.timeoutIdx])
}

func TestConfigWizard_UnknownSeedTimeoutIsOffered(t *testing.T) {
	w := NewConfigWizard(&config.ProjectConfig{Timeout: "1m30s"})

	assert.Equal(t, "1m30s", w.timeouts[w.timeoutIdx])
	assert.Len(t, w.timeouts, len(timeoutChoices)+1)
}

func TestConfigWizard_LocalFlow(t *testing.T) {
	tester := &mockTester{info: "PostgreSQL 16.2"}
	w := NewConfigWizard(nil, WithTester(tester))

	w, _ = press(t, w, "enter")
	require.Equal(t, stepConnection, w.step)
	require.Len(t, w.fields, 6)

	// host, port -> database
	w, _ = press(t, w, "enter", "enter")
	w = typeString(t, w, "inventory")
	// database, username, sslmode -> password
	w, _ = press(t, w, "enter", "enter", "enter")
	w = typeString(t, w, "hunter2")
	w, cmd := press(t, w, "enter")

	assert.True(t, w.testing)
	w = finishTest(t, w, cmd)
	require.True(t, tester.called)
	assert.Equal(t, "localhost", tester.gotCfg.Host)
	assert.Equal(t, 5432, tester.gotCfg.Port)
	assert.Equal(t, "inventory", tester.gotCfg.Database)
	assert.Equal(t, "hunter2", tester.gotCfg.Password)
	assert.Equal(t, vendorsum.AuthMethodStandard, tester.gotCfg.AuthMethod)
	assert.True(t, w.testOK)
	assert.Contains(t, w.View(), "PostgreSQL 16.2")

	w, _ = press(t, w, "enter")
	require.Equal(t, stepInput, w.step)
	w = typeString(t, w, "exports")
	w, _ = press(t, w, "enter", "enter", "enter")
	require.Equal(t, stepTimeout, w.step)

	w, _ = press(t, w, "down", "enter")
	require.Equal(t, stepReview, w.step)
	assert.Contains(t, w.View(), "inventory")
	assert.NotContains(t, w.View(), "hunter2")

	w, cmd = press(t, w, "enter")
	assert.True(t, isQuitCmd(cmd))

	res := w.Result()
	assert.False(t, res.Cancelled)
	assert.True(t, res.Tested)
	assert.Equal(t, config.ProjectConfig{
		Connection: config.ConnectionConfig{Database: "inventory", AuthMethod: "standard"},
		Input:      config.InputConfig{Dir: "exports"},
		Timeout:    "1h",
	}, res.Config)
}

func TestConfigWizard_CtrlCCancels(t *testing.T) {
	w := NewConfigWizard(nil)
	w, _ = press(t, w, "enter")

	w, cmd := press(t, w, "ctrl+c")

	assert.True(t, isQuitCmd(cmd))
	assert.True(t, w.Result().Cancelled)
}

func TestConfigWizard_EscOnProviderCancels(t *testing.T) {
	w, cmd := press(t, NewConfigWizard(nil), "esc")

	assert.True(t, isQuitCmd(cmd))
	assert.True(t, w.Result().Cancelled)
}

func TestConfigWizard_GoogleRequiresInstance(t *testing.T) {
	tester := &mockTester{}
	w := NewConfigWizard(nil, WithTester(tester))

	w, _ = press(t, w, "down", "down", "down", "enter")
	require.Equal(t, providerGoogle, w.provider().ID)
	require.Len(t, w.fields, 3)

	// leave the instance empty, fill database and user
	w, _ = press(t, w, "enter")
	w = typeString(t, w, "inventory")
	w, _ = press(t, w, "enter")
	w = typeString(t, w, "etl@proj.iam")
	w, cmd := press(t, w, "enter")

	assert.Equal(t, stepConnection, w.step)
	assert.Nil(t, cmd)
	assert.False(t, tester.called)
	assert.Contains(t, w.validationErr, "instance connection name is required")
	assert.Contains(t, w.View(), "instance connection name is required")
}

func TestConfigWizard_InvalidPort(t *testing.T) {
	w := NewConfigWizard(nil, WithTester(&mockTester{}))
	w, _ = press(t, w, "enter", "tab")
	w = typeString(t, w, "99999")
	w, _ = press(t, w, "tab")
	w = typeString(t, w, "inventory")
	w, _ = press(t, w, "tab", "tab", "tab", "enter")

	assert.Equal(t, stepConnection, w.step)
	assert.Contains(t, w.validationErr, "port must be a number")
}

func TestConfigWizard_FailedTestReturnsToFormOrSkips(t *testing.T) {
	tester := &mockTester{err: errors.New("connection refused")}
	w := NewConfigWizard(&config.ProjectConfig{
		Connection: config.ConnectionConfig{Database: "inventory"},
	}, WithTester(tester))

	w, _ = press(t, w, "enter")
	w, cmd := press(t, w, "tab", "tab", "tab", "tab", "tab", "enter")
	w = finishTest(t, w, cmd)

	assert.False(t, w.testOK)
	assert.Contains(t, w.View(), "connection refused")

	// enter goes back to the form with the answers kept
	w, _ = press(t, w, "enter")
	require.Equal(t, stepConnection, w.step)
	assert.Equal(t, "inventory", w.value(fieldDatabase))

	w, cmd = press(t, w, "tab", "tab", "tab", "tab", "tab", "enter")
	w = finishTest(t, w, cmd)

	// s keeps the untested configuration
	w, _ = press(t, w, "s")
	assert.Equal(t, stepInput, w.step)
	assert.False(t, w.Result().Tested)
}

func TestConfigWizard_AzureDefaultsToRequire(t *testing.T) {
	tester := &mockTester{info: "PostgreSQL 16.2"}
	w := NewConfigWizard(nil, WithTester(tester))

	w, _ = press(t, w, "down", "enter")
	require.Equal(t, providerAzure, w.provider().ID)

	w = typeString(t, w, "inv.postgres.database.azure.com")
	w, _ = press(t, w, "enter", "enter")
	w = typeString(t, w, "inventory")
	w, _ = press(t, w, "enter")
	w = typeString(t, w, "etl@contoso.com")
	// sslmode, tenant -> client
	w, _ = press(t, w, "enter", "enter", "enter")
	w = typeString(t, w, "client-1")
	w, cmd := press(t, w, "enter")
	w = finishTest(t, w, cmd)

	assert.Equal(t, vendorsum.AuthMethodAzureEntraID, tester.gotCfg.AuthMethod)
	assert.Equal(t, "require", tester.gotCfg.SSLMode)
	assert.Empty(t, tester.gotCfg.Password)

	w, _ = press(t, w, "enter", "enter", "enter", "enter", "enter", "enter")
	require.Equal(t, stepDone, w.step)

	got := w.Result().Config.Connection
	assert.Equal(t, "azure", got.AuthMethod)
	assert.Equal(t, "require", got.SSLMode)
	assert.Equal(t, "client-1", got.AzureClientID)
	assert.Empty(t, got.AzureTenantID)
}

func TestConfigWizard_SwitchingProviderClearsOtherSettings(t *testing.T) {
	seed := &config.ProjectConfig{
		Connection: config.ConnectionConfig{
			Host: "db.aws", Database: "inventory", Username: "etl",
			AuthMethod: "aws", AWSRegion: "eu-west-1",
		},
	}
	w := NewConfigWizard(seed, WithTester(&mockTester{}))

	// aws -> local
	w, _ = press(t, w, "up", "up", "enter")
	require.Equal(t, providerLocal, w.provider().ID)
	w, cmd := press(t, w, "tab", "tab", "tab", "tab", "tab", "enter")
	w = finishTest(t, w, cmd)

	assert.Equal(t, "standard", w.cfg.Connection.AuthMethod)
	assert.Equal(t, "db.aws", w.cfg.Connection.Host)
	assert.Empty(t, w.cfg.Connection.AWSRegion)
}

func TestConfigWizard_EscStepsBack(t *testing.T) {
	w := NewConfigWizard(nil)
	w, _ = press(t, w, "enter")
	require.Equal(t, stepConnection, w.step)

	w, _ = press(t, w, "esc")
	assert.Equal(t, stepProvider, w.step)
}

func TestDetectMode_NonInteractiveEnv(t *testing.T) {
	t.Setenv(NonInteractiveEnvVar, "1")
	t.Setenv("CI", "")

	assert.Equal(t, ModeNonInteractive, DetectMode())
}

func TestDetectMode_CI(t *testing.T) {
	t.Setenv(NonInteractiveEnvVar, "")
	t.Setenv("CI", "true")

	assert.Equal(t, ModeNonInteractive, DetectMode())
}

func TestIsInteractive_FalseWithoutTerminal(t *testing.T) {
	t.Setenv(NonInteractiveEnvVar, "")
	t.Setenv("CI", "")

	assert.False(t, IsInteractive())
}
