package ui

import (
	"fmt"
	"strings"

	"github.com/CaptianCoder/Imposter-good/internal/content"
	"github.com/CaptianCoder/Imposter-good/internal/game"
)

func (m *Model) View() string {
	var view string

	switch m.phase {
	case PhaseConnecting:
		view = m.viewConnecting()
	case PhaseJoin, PhasePassword:
		view = m.viewJoin()
	case PhaseLobby:
		view = m.viewLobby()
	case PhaseRound:
		view = m.viewRound()
	case PhaseError:
		view = m.viewError()
	}

	return DocStyle.Render(view)
}

func (m *Model) viewConnecting() string {
	return TitleStyle("Imposter") + "\n\nConnecting to server..."
}

func (m *Model) viewJoin() string {
	var b strings.Builder
	b.WriteString(TitleStyle("Imposter") + "\n\n")

	if m.phase == PhasePassword {
		b.WriteString("Admin login\n\n")
	} else {
		b.WriteString("Join the lobby\n\n")
	}
	b.WriteString(m.input.View())

	if m.errMsg != "" {
		b.WriteString("\n\n" + ErrorStyle.Render(m.errMsg))
	}
	b.WriteString(PromptStyle.Render("\nenter to confirm · esc to quit"))
	return b.String()
}

func (m *Model) viewLobby() string {
	var b strings.Builder
	b.WriteString(TitleStyle("Lobby") + "\n\n")
	b.WriteString(m.viewRoster())

	if m.isAdmin && m.categories != nil {
		b.WriteString("\n" + DimStyle.Render(fmt.Sprintf(
			"word categories: %s\nquestion categories: %s",
			strings.Join(m.categories.Imposter, ", "),
			strings.Join(m.categories.Guessing, ", "),
		)) + "\n")
	}

	if m.stats.Loaded {
		b.WriteString("\n" + BoxStyle.Render(fmt.Sprintf(
			"%s · %d rounds · %s %d · %s %d",
			m.stats.Name, m.stats.TotalRounds,
			ImposterIcon, m.stats.ImposterRounds,
			CrewmateIcon, m.stats.CrewmateRounds,
		)) + "\n")
	}

	b.WriteString("\n" + m.input.View())
	b.WriteString(m.viewFooter())
	return b.String()
}

func (m *Model) viewRound() string {
	var b strings.Builder
	b.WriteString(TitleStyle(fmt.Sprintf("Round %d", m.round.Round)) + "\n\n")

	if m.round.Role != "" {
		b.WriteString(m.viewRoleCard() + "\n\n")
	}

	if m.round.Question != nil {
		b.WriteString(BoxStyle.Render(fmt.Sprintf(
			"Crewmate question: %s\nImposter question: %s",
			m.round.Question.Crewmate, m.round.Question.Imposter,
		)) + "\n\n")
	}

	if len(m.round.Answers) > 0 {
		b.WriteString(m.viewAnswers() + "\n")
	}

	b.WriteString(m.viewRoster())
	b.WriteString("\n" + m.input.View())
	b.WriteString(m.viewFooter())
	return b.String()
}

// viewRoleCard renders the private role card.
// Imposters in word mode see the placeholder, never the real word.
func (m *Model) viewRoleCard() string {
	var style = CrewmateStyle
	icon := CrewmateIcon
	if m.round.Role == string(game.RoleImposter) {
		style = ImposterStyle
		icon = ImposterIcon
	}

	label := "Your word"
	if m.round.Mode == content.ModeGuessing {
		label = "Your question"
	}

	return RoleCardStyle.Render(fmt.Sprintf("%s %s\n\n%s: %s",
		icon, style.Render(m.round.Role), label, m.round.Content))
}

func (m *Model) viewAnswers() string {
	var b strings.Builder
	b.WriteString("Answers:\n")
	for _, a := range m.round.Answers {
		line := fmt.Sprintf("  %s: %s", a.Name, a.Answer)
		// Roles ride along with answers once submitted
		if m.round.Question != nil && a.Role == string(game.RoleImposter) {
			line += " " + ImposterIcon
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (m *Model) viewRoster() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Players (%d):\n", len(m.players)))
	for _, p := range m.players {
		line := "  " + p.Name
		if p.Name == m.name {
			line += DimStyle.Render(" (you)")
		}
		// Role is only present in the admin's snapshots
		switch p.Role {
		case string(game.RoleImposter):
			line += " " + ImposterIcon
		case string(game.RoleCrewmate):
			line += " " + CrewmateIcon
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (m *Model) viewFooter() string {
	var parts []string
	if m.notice != "" {
		parts = append(parts, m.notice)
	}
	if m.errMsg != "" {
		parts = append(parts, ErrorStyle.Render(m.errMsg))
	}
	if m.latency > 0 {
		parts = append(parts, DimStyle.Render(fmt.Sprintf("%dms", m.latency)))
	}
	parts = append(parts, DimStyle.Render("esc to quit"))
	return "\n" + PromptStyle.Render(strings.Join(parts, " · "))
}

func (m *Model) viewError() string {
	return TitleStyle("Imposter") + "\n\n" +
		ErrorStyle.Render("Connection lost: "+m.errMsg) +
		"\n\n" + DimStyle.Render("esc to quit")
}
