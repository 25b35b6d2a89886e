package tui

import (
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MaulanaR/zendash/models"
)

func cmdTickClock() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return clockTickMsg(t)
	})
}

func cmdTickGreeting() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg {
		return greetingTickMsg(t)
	})
}

func cmdTickWallpaper() tea.Cmd {
	return tea.Tick(time.Hour, func(t time.Time) tea.Msg {
		return wallpaperTickMsg(t)
	})
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (m dashboardModel) cmdFetchWallpaper() tea.Cmd {
	return func() tea.Msg {
		return wallpaperLoadedMsg{wallpaper: m.wallpapers.Fetch(m.ctx, time.Now())}
	}
}

func (m dashboardModel) cmdFetchQuote() tea.Cmd {
	return func() tea.Msg {
		return quoteLoadedMsg{quote: m.quotes.Fetch(m.ctx)}
	}
}

func cmdCopyQuote(quote models.Quote) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(quoteLine(quote.Text, quote.Author)); err != nil {
			return clearStatusMsg{}
		}
		return copiedMsg{}
	}
}
