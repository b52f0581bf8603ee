package ui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func confirmKey(m confirmInlineModel, msg tea.KeyMsg) (confirmInlineModel, tea.Cmd) {
	out, cmd := m.Update(msg)
	return out.(confirmInlineModel), cmd
}

func TestConfirmInline_Yes(t *testing.T) {
	m := newConfirmInlineModel("delete workspace", DefaultTheme(), false)
	m, _ = confirmKey(m, runesMsg("y"))
	m, cmd := confirmKey(m, keyMsg(tea.KeyEnter))
	if !m.value {
		t.Fatalf("expected confirmation")
	}
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
}

func TestConfirmInline_No(t *testing.T) {
	m := newConfirmInlineModel("delete workspace", DefaultTheme(), false)
	m, _ = confirmKey(m, runesMsg("no"))
	m, cmd := confirmKey(m, keyMsg(tea.KeyEnter))
	if m.value {
		t.Fatalf("expected rejection")
	}
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
}

func TestConfirmInline_IgnoresOtherAnswers(t *testing.T) {
	m := newConfirmInlineModel("delete workspace", DefaultTheme(), false)
	m, _ = confirmKey(m, runesMsg("maybe"))
	m, cmd := confirmKey(m, keyMsg(tea.KeyEnter))
	if cmd != nil {
		t.Fatalf("expected prompt to wait for a valid answer")
	}
	if m.value {
		t.Fatalf("expected value unset")
	}
}

func TestConfirmInline_EscCancels(t *testing.T) {
	m := newConfirmInlineModel("delete workspace", DefaultTheme(), false)
	m, cmd := confirmKey(m, keyMsg(tea.KeyEsc))
	if !errors.Is(m.err, ErrPromptCanceled) {
		t.Fatalf("expected ErrPromptCanceled, got %v", m.err)
	}
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
}
