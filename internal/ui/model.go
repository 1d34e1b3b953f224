package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CaptianCoder/Imposter-good/internal/client"
	"github.com/CaptianCoder/Imposter-good/internal/content"
	"github.com/CaptianCoder/Imposter-good/internal/logger"
	"github.com/CaptianCoder/Imposter-good/internal/protocol"
	"github.com/CaptianCoder/Imposter-good/internal/sound"
)

// Model is the top-level bubbletea model for the party client.
type Model struct {
	client *client.Client
	phase  GamePhase
	errMsg string
	notice string

	// Identity
	name    string
	isAdmin bool

	// Server state
	players    []protocol.PlayerInfo
	categories *protocol.CategoriesPayload
	round      RoundState
	stats      StatsState

	// Latency samples cross from the read goroutine via latencyCh;
	// only Update writes m.latency.
	latency   int64
	latencyCh chan int64

	// Audio
	soundManager *sound.SoundManager

	// UI components
	input  textinput.Model
	width  int
	height int
}

// NewModel creates the client model for the given server URL.
func NewModel(serverURL string) *Model {
	ti := textinput.New()
	ti.Placeholder = "Enter your name"
	ti.CharLimit = 24
	ti.Width = 30
	ti.Focus()

	return &Model{
		client:       client.NewClient(serverURL),
		phase:        PhaseConnecting,
		input:        ti,
		soundManager: sound.NewSoundManager(),
		latencyCh:    make(chan int64, 8),
	}
}

func (m *Model) Init() tea.Cmd {
	go func() {
		_ = m.soundManager.Init()
	}()

	return tea.Batch(
		m.connectToServer(),
		textinput.Blink,
	)
}

func (m *Model) connectToServer() tea.Cmd {
	return func() tea.Msg {
		if err := m.client.Connect(); err != nil {
			return ConnectionErrorMsg{Err: err}
		}
		return ConnectedMsg{}
	}
}

func (m *Model) listenForMessages() tea.Cmd {
	return func() tea.Msg {
		msg, err := m.client.Receive()
		if err != nil {
			return ConnectionErrorMsg{Err: err}
		}
		return ServerMessage{Msg: msg}
	}
}

func (m *Model) listenForLatency() tea.Cmd {
	return func() tea.Msg {
		return LatencyMsg{Latency: <-m.latencyCh}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case ConnectedMsg:
		m.phase = PhaseJoin
		m.client.StartHeartbeat()
		m.client.OnLatencyUpdate = func(latency int64) {
			select {
			case m.latencyCh <- latency:
			default:
			}
		}
		return m, tea.Batch(m.listenForMessages(), m.listenForLatency())

	case LatencyMsg:
		m.latency = msg.Latency
		return m, m.listenForLatency()

	case ConnectionErrorMsg:
		m.phase = PhaseError
		m.errMsg = msg.Err.Error()
		return m, nil

	case ServerMessage:
		cmd := m.handleServerMessage(msg.Msg)
		return m, tea.Batch(cmd, m.listenForMessages())

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKey routes keyboard input by phase.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.client.Close()
		m.soundManager.Close()
		return m, tea.Quit

	case tea.KeyEnter:
		return m.handleEnter()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleEnter submits the current input for the active phase.
func (m *Model) handleEnter() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.input.Value())

	switch m.phase {
	case PhaseJoin:
		if value == "" {
			return m, nil
		}
		m.name = value
		if strings.EqualFold(value, "admin") {
			m.phase = PhasePassword
			m.input.Reset()
			m.input.Placeholder = "Admin password"
			m.input.EchoMode = textinput.EchoPassword
			return m, nil
		}
		if err := m.client.Join(value, ""); err != nil {
			logger.LogError("join failed: %v", err)
		}
		m.input.Reset()
		return m, nil

	case PhasePassword:
		if err := m.client.Join(m.name, value); err != nil {
			logger.LogError("admin join failed: %v", err)
		}
		m.input.Reset()
		m.input.EchoMode = textinput.EchoNormal
		return m, nil

	case PhaseLobby, PhaseRound:
		return m.handleCommand(value)
	}

	return m, nil
}

// handleCommand interprets lobby and round input.
// Players submit plain text as their answer; the admin issues commands.
func (m *Model) handleCommand(value string) (tea.Model, tea.Cmd) {
	if value == "" {
		return m, nil
	}
	defer m.input.Reset()

	if m.isAdmin {
		return m.handleAdminCommand(value)
	}

	switch value {
	case "/stats":
		_ = m.client.GetStats()
	default:
		if m.phase == PhaseRound {
			_ = m.client.SubmitAnswer(value)
		}
	}
	return m, nil
}

// handleAdminCommand parses admin console commands:
//
//	start <mode> <category> <count>   begin a round
//	reveal                            publish the true question
//	end                               finish the round
func (m *Model) handleAdminCommand(value string) (tea.Model, tea.Cmd) {
	fields := strings.Fields(value)

	switch fields[0] {
	case "start":
		mode := content.ModeImposter
		category := content.CategoryRandom
		count := 1
		if len(fields) > 1 {
			mode = fields[1]
		}
		if len(fields) > 2 {
			category = fields[2]
		}
		if len(fields) > 3 {
			if n, err := strconv.Atoi(fields[3]); err == nil {
				count = n
			}
		}
		_ = m.client.StartGame(category, count, mode)

	case "reveal":
		_ = m.client.RevealQuestion()

	case "end":
		_ = m.client.EndGame()

	default:
		m.notice = "Commands: start <mode> [category] [count] | reveal | end"
	}

	return m, nil
}
