package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const defaultBaseURL = "http://localhost:3536"

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)
)

type step int

const (
	stepEnteringFirstName step = iota
	stepEnteringLastName
	stepEnteringEmail
	stepEnteringPassword
	stepCreatingAccount
	stepVerifyingLogin
	stepComplete
)

type model struct {
	step         step
	baseURL      string
	firstName    string
	lastName     string
	email        string
	password     string
	currentInput string
	message      string
	quitting     bool
}

type accountCreatedMsg struct{}
type loginVerifiedMsg struct {
	courses int
}
type validationErrMsg struct{ errors []string }
type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

func initialModel() model {
	baseURL := os.Getenv("API_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return model{
		step:    stepEnteringFirstName,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func createAccount(baseURL, firstName, lastName, email, password string) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 10 * time.Second}

		payload := map[string]string{
			"firstName":    firstName,
			"lastName":     lastName,
			"emailAddress": email,
			"password":     password,
		}
		jsonData, _ := json.Marshal(payload)

		req, _ := http.NewRequest("POST", baseURL+"/api/v1/users", bytes.NewBuffer(jsonData))
		req.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			return errMsg{fmt.Errorf("server not reachable: %w", err)}
		}
		defer resp.Body.Close()

		switch resp.StatusCode {
		case http.StatusCreated:
			return accountCreatedMsg{}
		case http.StatusBadRequest:
			var body struct {
				Errors []string `json:"errors"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && len(body.Errors) > 0 {
				return validationErrMsg{errors: body.Errors}
			}
			return errMsg{fmt.Errorf("signup rejected with status %d", resp.StatusCode)}
		default:
			raw, _ := io.ReadAll(resp.Body)
			return errMsg{fmt.Errorf("signup failed with status %d: %s", resp.StatusCode, string(raw))}
		}
	}
}

func verifyLogin(baseURL, email, password string) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 10 * time.Second}

		req, _ := http.NewRequest("GET", baseURL+"/api/v1/users", nil)
		req.SetBasicAuth(email, password)

		resp, err := client.Do(req)
		if err != nil {
			return errMsg{fmt.Errorf("server not reachable: %w", err)}
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return errMsg{fmt.Errorf("login check failed with status %d", resp.StatusCode)}
		}

		var body struct {
			Courses []string `json:"courses"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return errMsg{fmt.Errorf("unexpected response: %w", err)}
		}

		return loginVerifiedMsg{courses: len(body.Courses)}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "backspace":
			if len(m.currentInput) > 0 {
				m.currentInput = m.currentInput[:len(m.currentInput)-1]
			}

		default:
			if m.step <= stepEnteringPassword && len(msg.String()) == 1 {
				m.currentInput += msg.String()
			}

		case "enter":
			switch m.step {
			case stepEnteringFirstName:
				if m.currentInput != "" {
					m.firstName = m.currentInput
					m.currentInput = ""
					m.step = stepEnteringLastName
				}

			case stepEnteringLastName:
				if m.currentInput != "" {
					m.lastName = m.currentInput
					m.currentInput = ""
					m.step = stepEnteringEmail
				}

			case stepEnteringEmail:
				if m.currentInput != "" {
					m.email = m.currentInput
					m.currentInput = ""
					m.step = stepEnteringPassword
				}

			case stepEnteringPassword:
				if m.currentInput != "" {
					m.password = m.currentInput
					m.currentInput = ""
					m.step = stepCreatingAccount
					m.message = "Creating account..."
					return m, createAccount(m.baseURL, m.firstName, m.lastName, m.email, m.password)
				}

			case stepComplete:
				m.quitting = true
				return m, tea.Quit
			}
		}

	case accountCreatedMsg:
		m.step = stepVerifyingLogin
		m.message = successStyle.Render("✓ Account created for " + m.email)
		return m, verifyLogin(m.baseURL, m.email, m.password)

	case loginVerifiedMsg:
		m.step = stepComplete
		m.message = successStyle.Render(fmt.Sprintf("✓ Credentials verified!\nSigned in as %s (%d courses)", m.email, msg.courses))

	case validationErrMsg:
		// Start over from the first field so everything can be corrected
		m.message = errorStyle.Render("✗ " + strings.Join(msg.errors, "\n✗ "))
		m.step = stepEnteringFirstName
		m.currentInput = ""

	case errMsg:
		m.message = errorStyle.Render("✗ " + msg.err.Error())
		m.step = stepEnteringFirstName
		m.currentInput = ""
	}

	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render("📚 Course API Account Setup\n\n"))

	if m.message != "" && m.step <= stepEnteringPassword {
		s.WriteString(m.message + "\n\n")
	}

	switch m.step {
	case stepEnteringFirstName:
		s.WriteString(promptStyle.Render("Enter your first name:\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter (Ctrl+C to quit)\n")

	case stepEnteringLastName:
		s.WriteString(promptStyle.Render("Enter your last name:\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringEmail:
		s.WriteString(promptStyle.Render("Enter your email address:\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringPassword:
		s.WriteString(promptStyle.Render("Enter a password (7-50 characters):\n"))
		s.WriteString(inputStyle.Render("> " + strings.Repeat("•", len(m.currentInput))))
		s.WriteString("\n\nPress Enter\n")

	case stepCreatingAccount, stepVerifyingLogin:
		s.WriteString(m.message + "\n")

	case stepComplete:
		s.WriteString(m.message + "\n")
		s.WriteString("\nPress Enter to exit\n")
	}

	return s.String()
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
