package tui

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/vendorsum/internal/config"
	"github.com/vvka-141/vendorsum/internal/db"
	"github.com/vvka-141/vendorsum/pkg/vendorsum"
)

const connectionTestTimeout = 15 * time.Second

// Provider IDs.
const (
	providerLocal  = "local"
	providerAzure  = "azure"
	providerAWS    = "aws"
	providerGoogle = "google"
)

// Form field keys.
const (
	fieldHost      = "host"
	fieldPort      = "port"
	fieldDatabase  = "database"
	fieldUsername  = "username"
	fieldSSLMode   = "sslmode"
	fieldPassword  = "password"
	fieldTenantID  = "azure_tenant_id"
	fieldClientID  = "azure_client_id"
	fieldRegion    = "aws_region"
	fieldInstance  = "google_instance"
	fieldInputDir  = "input_dir"
	fieldExtension = "extension"
	fieldLogDir    = "log_dir"
)

var sslModes = []string{"disable", "allow", "prefer", "require", "verify-ca", "verify-full"}

// Provider is a database hosting option together with the auth_method it
// writes to vendorsum.yaml.
type Provider struct {
	ID          string
	Name        string
	Description string
	AuthMethod  string
}

var providers = []Provider{
	{ID: providerLocal, Name: "Local / On-Premises", Description: "Password from the form, $PGPASSWORD or ~/.pgpass", AuthMethod: "standard"},
	{ID: providerAzure, Name: "Azure Database for PostgreSQL", Description: "Azure Entra ID tokens (az login, managed identity or service principal)", AuthMethod: "azure"},
	{ID: providerAWS, Name: "AWS RDS PostgreSQL", Description: "IAM database authentication with the default AWS credential chain", AuthMethod: "aws"},
	{ID: providerGoogle, Name: "Google Cloud SQL", Description: "Cloud SQL IAM authentication", AuthMethod: "google"},
}

var timeoutChoices = []string{"10m", "30m", "1h", "2h"}

// ConfigResult holds the result of the config wizard.
type ConfigResult struct {
	Cancelled bool
	Tested    bool
	Config    config.ProjectConfig
}

type wizardStep int

const (
	stepProvider wizardStep = iota
	stepConnection
	stepTest
	stepInput
	stepTimeout
	stepReview
	stepDone
)

type field struct {
	key      string
	label    string
	required bool
	input    textinput.Model
}

func newField(key, label, placeholder, value string, required bool) field {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 256
	ti.Width = 50
	ti.SetValue(value)
	return field{key: key, label: label, required: required, input: ti}
}

type testResultMsg struct {
	success bool
	err     error
	info    string
}

// WizardOption configures a ConfigWizard.
type WizardOption func(*ConfigWizard)

// WithTester injects a ConnectionTester.
func WithTester(t ConnectionTester) WizardOption {
	return func(w *ConfigWizard) {
		w.tester = t
	}
}

// ConfigWizard guides users through creating vendorsum.yaml.
type ConfigWizard struct {
	step wizardStep

	providerIdx int

	fields        []field
	focusIndex    int
	validationErr string

	spinner  spinner.Model
	testing  bool
	testDone bool
	testOK   bool
	testErr  error
	testInfo string

	timeouts   []string
	timeoutIdx int

	// cfg accumulates the answers; the password is kept apart and never saved.
	cfg      config.ProjectConfig
	password string

	result ConfigResult

	width  int
	height int

	styles wizardStyles
	keys   wizardKeys
	tester ConnectionTester
}

type wizardStyles struct {
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Selected    lipgloss.Style
	Unselected  lipgloss.Style
	Description lipgloss.Style
	Help        lipgloss.Style
	Success     lipgloss.Style
	Error       lipgloss.Style
	Label       lipgloss.Style
}

type wizardKeys struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
	Tab    key.Binding
}

func defaultWizardStyles() wizardStyles {
	return wizardStyles{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginBottom(1),
		Subtitle:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")).MarginBottom(1),
		Selected:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		Unselected:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Description: lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginLeft(4),
		Help:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1),
		Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Label:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

func defaultWizardKeys() wizardKeys {
	return wizardKeys{
		Up:     key.NewBinding(key.WithKeys("up", "k")),
		Down:   key.NewBinding(key.WithKeys("down", "j")),
		Select: key.NewBinding(key.WithKeys("enter")),
		Back:   key.NewBinding(key.WithKeys("esc")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c", "q")),
		Tab:    key.NewBinding(key.WithKeys("tab")),
	}
}

// NewConfigWizard creates a wizard whose answers start from seed, usually the
// effective configuration of the current directory. A nil seed starts empty.
func NewConfigWizard(seed *config.ProjectConfig, opts ...WizardOption) ConfigWizard {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))

	w := ConfigWizard{
		step:     stepProvider,
		spinner:  s,
		timeouts: timeoutChoices,
		width:    80,
		height:   24,
		styles:   defaultWizardStyles(),
		keys:     defaultWizardKeys(),
		tester:   poolTester{},
	}
	if seed != nil {
		w.cfg = *seed
	}
	w.providerIdx = providerIndex(w.cfg.Connection.AuthMethod)

	w.timeoutIdx = timeoutIndex(w.timeouts, w.cfg.Timeout)
	if w.timeoutIdx < 0 {
		if w.cfg.Timeout != "" {
			w.timeouts = append([]string{w.cfg.Timeout}, timeoutChoices...)
			w.timeoutIdx = 0
		} else {
			w.timeoutIdx = slices.Index(w.timeouts, "30m")
		}
	}

	for _, opt := range opts {
		opt(&w)
	}
	return w
}

// timeoutIndex matches by duration so that "30m0s" selects "30m".
func timeoutIndex(choices []string, timeout string) int {
	want, err := time.ParseDuration(timeout)
	if err != nil {
		return -1
	}
	return slices.IndexFunc(choices, func(c string) bool {
		d, err := time.ParseDuration(c)
		return err == nil && d == want
	})
}

func providerIndex(authMethod string) int {
	method, err := db.ParseAuthMethod(authMethod)
	if err != nil {
		return 0
	}
	switch method {
	case vendorsum.AuthMethodAzureEntraID:
		return 1
	case vendorsum.AuthMethodAWSIAM:
		return 2
	case vendorsum.AuthMethodGoogleIAM:
		return 3
	default:
		return 0
	}
}

func (w ConfigWizard) provider() Provider {
	return providers[w.providerIdx]
}

// Init implements tea.Model.
func (w ConfigWizard) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (w ConfigWizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width = msg.Width
		w.height = msg.Height
		return w, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			w.result.Cancelled = true
			return w, tea.Quit
		}

		switch w.step {
		case stepProvider:
			return w.updateProvider(msg)
		case stepConnection, stepInput:
			return w.updateForm(msg)
		case stepTest:
			return w.updateTest(msg)
		case stepTimeout:
			return w.updateTimeout(msg)
		case stepReview:
			return w.updateReview(msg)
		}

	case testResultMsg:
		w.testing = false
		w.testDone = true
		w.testOK = msg.success
		w.testErr = msg.err
		w.testInfo = msg.info
		return w, nil

	case spinner.TickMsg:
		if w.testing {
			var cmd tea.Cmd
			w.spinner, cmd = w.spinner.Update(msg)
			return w, cmd
		}

	default:
		// cursor blink and focus messages go to the active input
		if (w.step == stepConnection || w.step == stepInput) && w.focusIndex < len(w.fields) {
			var cmd tea.Cmd
			w.fields[w.focusIndex].input, cmd = w.fields[w.focusIndex].input.Update(msg)
			return w, cmd
		}
	}

	return w, nil
}

func (w ConfigWizard) updateProvider(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, w.keys.Up):
		if w.providerIdx > 0 {
			w.providerIdx--
		}
	case key.Matches(msg, w.keys.Down):
		if w.providerIdx < len(providers)-1 {
			w.providerIdx++
		}
	case key.Matches(msg, w.keys.Select):
		return w.showConnectionForm()
	case key.Matches(msg, w.keys.Quit), key.Matches(msg, w.keys.Back):
		w.result.Cancelled = true
		return w, tea.Quit
	}
	return w, nil
}

func (w ConfigWizard) showConnectionForm() (tea.Model, tea.Cmd) {
	w.step = stepConnection
	w.fields = connectionFields(w.provider(), w.cfg.Connection, w.password)
	return w, w.focusField(0)
}

func (w ConfigWizard) showInputForm() (tea.Model, tea.Cmd) {
	w.step = stepInput
	w.fields = []field{
		newField(fieldInputDir, "Input directory", vendorsum.DefaultInputDir, w.cfg.Input.Dir, false),
		newField(fieldExtension, "File extension", vendorsum.DefaultExtension, w.cfg.Input.Extension, false),
		newField(fieldLogDir, "Log directory", vendorsum.DefaultLogDir, w.cfg.Logs.Dir, false),
	}
	return w, w.focusField(0)
}

func connectionFields(p Provider, c config.ConnectionConfig, password string) []field {
	if p.ID == providerGoogle {
		return []field{
			newField(fieldInstance, "Instance connection name", "project:region:instance", c.GoogleInstance, true),
			newField(fieldDatabase, "Database", "inventory", c.Database, true),
			newField(fieldUsername, "IAM user", "etl@project.iam", c.Username, true),
		}
	}

	port := ""
	if c.Port > 0 {
		port = strconv.Itoa(c.Port)
	}
	sslPlaceholder := "prefer"
	if p.ID != providerLocal {
		sslPlaceholder = "require"
	}

	fields := []field{
		newField(fieldHost, "Host", "localhost", c.Host, p.ID != providerLocal),
		newField(fieldPort, "Port", "5432", port, false),
		newField(fieldDatabase, "Database", "inventory", c.Database, true),
		newField(fieldUsername, "Username", "postgres", c.Username, p.ID != providerLocal),
		newField(fieldSSLMode, "SSL mode", sslPlaceholder, c.SSLMode, false),
	}

	switch p.ID {
	case providerLocal:
		pw := newField(fieldPassword, "Password (connection test only, never saved)", "", password, false)
		pw.input.EchoMode = textinput.EchoPassword
		pw.input.EchoCharacter = '•'
		fields = append(fields, pw)
	case providerAzure:
		fields = append(fields,
			newField(fieldTenantID, "Azure tenant ID (optional)", "00000000-0000-0000-0000-000000000000", c.AzureTenantID, false),
			newField(fieldClientID, "Azure client ID (optional)", "00000000-0000-0000-0000-000000000000", c.AzureClientID, false),
		)
	case providerAWS:
		fields = append(fields, newField(fieldRegion, "AWS region", "us-east-1", c.AWSRegion, false))
	}
	return fields
}

func (w *ConfigWizard) focusField(idx int) tea.Cmd {
	for i := range w.fields {
		w.fields[i].input.Blur()
	}
	w.focusIndex = idx
	if idx < 0 || idx >= len(w.fields) {
		return nil
	}
	return w.fields[idx].input.Focus()
}

func (w ConfigWizard) value(key string) string {
	for _, f := range w.fields {
		if f.key == key {
			return strings.TrimSpace(f.input.Value())
		}
	}
	return ""
}

func (w ConfigWizard) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, w.keys.Tab), msg.String() == "down":
		if w.focusIndex < len(w.fields)-1 {
			return w, w.focusField(w.focusIndex + 1)
		}
	case msg.String() == "shift+tab", msg.String() == "up":
		if w.focusIndex > 0 {
			return w, w.focusField(w.focusIndex - 1)
		}
	case key.Matches(msg, w.keys.Select):
		if w.focusIndex < len(w.fields)-1 {
			return w, w.focusField(w.focusIndex + 1)
		}
		if err := w.validateFields(); err != nil {
			w.validationErr = err.Error()
			return w, nil
		}
		w.validationErr = ""
		if w.step == stepInput {
			w.applyInput()
			w.step = stepTimeout
			return w, nil
		}
		w.applyConnection()
		w.step = stepTest
		w.testing = true
		w.testDone = false
		return w, tea.Batch(w.spinner.Tick, w.testConnection())
	case key.Matches(msg, w.keys.Back):
		w.validationErr = ""
		if w.step == stepInput {
			return w.showConnectionForm()
		}
		w.step = stepProvider
		return w, nil
	default:
		w.validationErr = ""
		var cmd tea.Cmd
		w.fields[w.focusIndex].input, cmd = w.fields[w.focusIndex].input.Update(msg)
		return w, cmd
	}
	return w, nil
}

func (w ConfigWizard) validateFields() error {
	for _, f := range w.fields {
		if f.required && strings.TrimSpace(f.input.Value()) == "" {
			return fmt.Errorf("%s is required", strings.ToLower(f.label))
		}
	}
	if v := w.value(fieldPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port < 1 || port > 65535 {
			return fmt.Errorf("port must be a number between 1 and 65535")
		}
	}
	if v := w.value(fieldSSLMode); v != "" && !slices.Contains(sslModes, v) {
		return fmt.Errorf("ssl mode must be one of %s", strings.Join(sslModes, ", "))
	}
	if v := w.value(fieldExtension); v != "" && !strings.HasPrefix(v, ".") {
		return fmt.Errorf("file extension must start with a dot, e.g. .csv")
	}
	return nil
}

// applyConnection copies the connection form into cfg. Certificate paths
// from the seed are kept; settings of other providers are cleared.
func (w *ConfigWizard) applyConnection() {
	p := w.provider()
	c := w.cfg.Connection

	c.AuthMethod = p.AuthMethod
	c.Host = w.value(fieldHost)
	c.Port = 0
	if port, err := strconv.Atoi(w.value(fieldPort)); err == nil {
		c.Port = port
	}
	c.Database = w.value(fieldDatabase)
	c.Username = w.value(fieldUsername)
	c.SSLMode = w.value(fieldSSLMode)
	if c.SSLMode == "" && p.ID != providerLocal && p.ID != providerGoogle {
		c.SSLMode = "require"
	}
	c.AzureTenantID = w.value(fieldTenantID)
	c.AzureClientID = w.value(fieldClientID)
	c.AWSRegion = w.value(fieldRegion)
	c.GoogleInstance = w.value(fieldInstance)

	w.cfg.Connection = c
	w.password = w.value(fieldPassword)
}

func (w *ConfigWizard) applyInput() {
	w.cfg.Input.Dir = w.value(fieldInputDir)
	w.cfg.Input.Extension = w.value(fieldExtension)
	w.cfg.Logs.Dir = w.value(fieldLogDir)
}

// connectionConfig is what the connection test dials: the saved answers
// plus defaults, the typed password and secrets from the environment.
func (w ConfigWizard) connectionConfig() *vendorsum.ConnectionConfig {
	c := w.cfg.Connection
	env := db.LoadFromEnvironment()
	method, _ := db.ParseAuthMethod(c.AuthMethod)

	cfg := &vendorsum.ConnectionConfig{
		Host:              c.Host,
		Port:              c.Port,
		Database:          c.Database,
		Username:          c.Username,
		Password:          w.password,
		SSLMode:           c.SSLMode,
		SSLCert:           c.SSLCert,
		SSLKey:            c.SSLKey,
		SSLRootCert:       c.SSLRootCert,
		AuthMethod:        method,
		AdditionalParams:  make(map[string]string),
		AzureTenantID:     c.AzureTenantID,
		AzureClientID:     c.AzureClientID,
		AzureClientSecret: env.AzureClientSecret,
		AWSRegion:         c.AWSRegion,
		GoogleInstance:    c.GoogleInstance,
	}
	if cfg.Host == "" {
		cfg.Host = "localhost"
	}
	if cfg.Port == 0 {
		cfg.Port = 5432
	}
	if cfg.SSLMode == "" {
		cfg.SSLMode = "prefer"
	}
	if cfg.Password == "" && method == vendorsum.AuthMethodStandard {
		cfg.Password = env.PGPASSWORD
	}
	if cfg.AWSRegion == "" && method == vendorsum.AuthMethodAWSIAM {
		cfg.AWSRegion = env.AWSRegion
	}
	return cfg
}

func (w ConfigWizard) testConnection() tea.Cmd {
	cfg := w.connectionConfig()
	tester := w.tester
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), connectionTestTimeout)
		defer cancel()
		info, err := tester.TestConnection(ctx, cfg)
		if err != nil {
			return testResultMsg{success: false, err: err}
		}
		return testResultMsg{success: true, info: info}
	}
}

func (w ConfigWizard) updateTest(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !w.testDone {
		return w, nil
	}

	switch {
	case key.Matches(msg, w.keys.Select):
		if w.testOK {
			w.result.Tested = true
			return w.showInputForm()
		}
		return w.showConnectionForm()
	case msg.String() == "s":
		// keep a configuration that cannot be verified from here
		return w.showInputForm()
	case key.Matches(msg, w.keys.Back):
		return w.showConnectionForm()
	}
	return w, nil
}

func (w ConfigWizard) updateTimeout(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, w.keys.Up):
		if w.timeoutIdx > 0 {
			w.timeoutIdx--
		}
	case key.Matches(msg, w.keys.Down):
		if w.timeoutIdx < len(w.timeouts)-1 {
			w.timeoutIdx++
		}
	case key.Matches(msg, w.keys.Select):
		w.cfg.Timeout = w.timeouts[w.timeoutIdx]
		w.step = stepReview
	case key.Matches(msg, w.keys.Back):
		return w.showInputForm()
	}
	return w, nil
}

func (w ConfigWizard) updateReview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, w.keys.Select):
		w.result.Config = w.cfg
		w.step = stepDone
		return w, tea.Quit
	case key.Matches(msg, w.keys.Back):
		w.step = stepTimeout
	}
	return w, nil
}

// View implements tea.Model.
func (w ConfigWizard) View() string {
	var b strings.Builder

	b.WriteString(w.styles.Title.Render("vendorsum - Configuration"))
	b.WriteString("\n")

	switch w.step {
	case stepProvider:
		b.WriteString(w.viewProvider())
	case stepConnection:
		b.WriteString(w.viewForm("Connection to "+w.provider().Name, "Settings written to the connection block"))
	case stepTest:
		b.WriteString(w.viewTest())
	case stepInput:
		b.WriteString(w.viewForm("Input and logs", "Leave a field empty to use the default shown"))
	case stepTimeout:
		b.WriteString(w.viewTimeout())
	case stepReview:
		b.WriteString(w.viewReview())
	}

	return b.String()
}

func (w ConfigWizard) viewProvider() string {
	var b strings.Builder

	b.WriteString(w.styles.Subtitle.Render("Where does the database run?"))
	b.WriteString("\n")

	for i, p := range providers {
		cursor := "  "
		style := w.styles.Unselected
		symbol := "○"
		if i == w.providerIdx {
			cursor = ""
			style = w.styles.Selected
			symbol = "●"
		}
		b.WriteString(cursor)
		b.WriteString(style.Render(symbol + " " + p.Name))
		b.WriteString("\n")
		b.WriteString(w.styles.Description.Render(p.Description))
		b.WriteString("\n")
	}

	b.WriteString(w.styles.Help.Render("↑/↓ navigate • enter select • q quit"))
	return b.String()
}

func (w ConfigWizard) viewForm(title, description string) string {
	var b strings.Builder

	b.WriteString(w.styles.Subtitle.Render(title))
	b.WriteString("\n")
	b.WriteString(w.styles.Description.Render(description))
	b.WriteString("\n\n")

	for _, f := range w.fields {
		label := f.label
		if f.required {
			label += w.styles.Error.Render(" *")
		}
		b.WriteString(w.styles.Label.Render(label))
		b.WriteString("\n")
		b.WriteString(f.input.View())
		b.WriteString("\n\n")
	}

	if w.validationErr != "" {
		b.WriteString(w.styles.Error.Render("✗ " + w.validationErr))
		b.WriteString("\n")
	}

	b.WriteString(w.styles.Help.Render("tab next • shift+tab prev • enter continue • esc back"))
	return b.String()
}

func (w ConfigWizard) viewTest() string {
	var b strings.Builder

	c := w.connectionConfig()
	target := fmt.Sprintf("%s:%d/%s", c.Host, c.Port, c.Database)
	if c.GoogleInstance != "" {
		target = c.GoogleInstance + "/" + c.Database
	}

	b.WriteString(w.styles.Subtitle.Render("Testing connection to " + target))
	b.WriteString("\n\n")

	switch {
	case w.testing:
		b.WriteString(w.spinner.View())
		b.WriteString(" Connecting...")
	case w.testOK:
		b.WriteString(w.styles.Success.Render("✓ Connected: " + w.testInfo))
		b.WriteString("\n")
		b.WriteString(w.styles.Help.Render("enter continue • esc edit"))
	default:
		msg := "unknown error"
		if w.testErr != nil {
			msg = w.testErr.Error()
		}
		b.WriteString(w.styles.Error.Render("✗ Connection failed: " + msg))
		b.WriteString("\n")
		b.WriteString(w.styles.Help.Render("enter edit • s keep anyway • esc back"))
	}
	return b.String()
}

func (w ConfigWizard) viewTimeout() string {
	var b strings.Builder

	b.WriteString(w.styles.Subtitle.Render("Timeout"))
	b.WriteString("\n")
	b.WriteString(w.styles.Description.Render("Upper bound for a whole load, summarize or run"))
	b.WriteString("\n\n")

	for i, t := range w.timeouts {
		style := w.styles.Unselected
		symbol := "○"
		if i == w.timeoutIdx {
			style = w.styles.Selected
			symbol = "●"
		}
		b.WriteString("  ")
		b.WriteString(style.Render(symbol + " " + t))
		b.WriteString("\n")
	}

	b.WriteString(w.styles.Help.Render("↑/↓ choose • enter next • esc back"))
	return b.String()
}

func (w ConfigWizard) viewReview() string {
	var b strings.Builder

	b.WriteString(w.styles.Subtitle.Render("Review Configuration"))
	b.WriteString("\n\n")

	yamlBytes, err := yaml.Marshal(w.cfg)
	if err != nil {
		b.WriteString(w.styles.Error.Render(err.Error()))
	}
	for _, line := range strings.Split(strings.TrimRight(string(yamlBytes), "\n"), "\n") {
		b.WriteString(w.styles.Description.Render(line))
		b.WriteString("\n")
	}

	b.WriteString(w.styles.Help.Render("enter save • esc go back"))
	return b.String()
}

// Result returns the wizard result.
func (w ConfigWizard) Result() ConfigResult {
	return w.result
}

// RunConfigWizard runs the wizard full screen and returns the answers.
func RunConfigWizard(seed *config.ProjectConfig, opts ...WizardOption) (ConfigResult, error) {
	p := tea.NewProgram(NewConfigWizard(seed, opts...), tea.WithAltScreen())

	model, err := p.Run()
	if err != nil {
		return ConfigResult{Cancelled: true}, err
	}
	return model.(ConfigWizard).Result(), nil
}
