package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/meufuturo/futuro/internal/api"
	"github.com/meufuturo/futuro/internal/model"
	"github.com/meufuturo/futuro/internal/session"
)

// opTimeout bounds every command-driven API call.
const opTimeout = 30 * time.Second

// statusTTL is how long a transient status message stays on screen.
const statusTTL = 4 * time.Second

func loadCategoriesCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()

		categories, err := client.GetCategories(ctx, api.CategoryParams{})
		return categoriesLoadedMsg{categories: categories, err: err}
	}
}

func reloadCmd(sess *session.Session) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()

		_ = sess.Reload(ctx)
		return nil
	}
}

func createCmd(sess *session.Session, input api.TransactionInput) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()

		return opResultMsg{action: "Transação criada", result: sess.CreateTransaction(ctx, input)}
	}
}

func updateCmd(sess *session.Session, id string, patch api.TransactionPatch) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()

		return opResultMsg{action: "Transação atualizada", result: sess.UpdateTransaction(ctx, id, patch)}
	}
}

func deleteCmd(sess *session.Session, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()

		return opResultMsg{action: "Transação excluída", result: sess.DeleteTransaction(ctx, id)}
	}
}

func duplicateCmd(sess *session.Session, tx model.Transaction) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()

		return opResultMsg{action: "Transação duplicada", result: sess.DuplicateTransaction(ctx, tx)}
	}
}

func exportCmd(client *api.Client, params api.ExportParams, destDir string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*opTimeout)
		defer cancel()

		path, err := client.ExportReport(ctx, params, destDir)
		return exportDoneMsg{path: path, err: err}
	}
}

// waitForInvalidation blocks on the refresh bus and converts the next
// event into a message. The model re-issues it after each delivery.
func waitForInvalidation(ch <-chan session.Invalidation) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		return invalidationMsg{event: ev, ok: ok}
	}
}

func expireStatusCmd() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return statusExpiredMsg{}
	})
}
