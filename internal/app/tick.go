package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
)

type tickMsg time.Time

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.tick, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// handleTick runs one render tick: the session tick, queued remote
// requests, the MPRIS snapshot, session events and the resume save.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	m.session.Tick()
	if m.remote != nil {
		m.remote.Drain(m.session)
	}
	if m.publisher != nil {
		m.publisher.Publish(m.session.Snapshot())
	}
	m.drainEvents()
	m.drainMessages()
	m.saveResume(false)

	return m, m.tickCmd()
}

// drainEvents consumes pending session events without blocking.
func (m *Model) drainEvents() {
	for {
		select {
		case e := <-m.sub.TrackChanged:
			if m.tracks != nil {
				m.tracks.TrackChanged(e.Current)
			}
		case e := <-m.sub.Error:
			log.Warn().Err(e.Err).Str("op", e.Operation).Str("path", e.Path).Msg("playback")
			m.status = e.Operation + " failed: " + e.Path
			m.statusErr = true
		case <-m.sub.StateChanged:
		case <-m.sub.QueueChanged:
		case <-m.sub.ModeChanged:
		case <-m.sub.PositionChanged:
		default:
			return
		}
	}
}

// drainMessages shows the latest captured stderr line.
func (m *Model) drainMessages() {
	if m.messages == nil {
		return
	}
	for {
		select {
		case line := <-m.messages:
			m.status = line
			m.statusErr = true
		default:
			return
		}
	}
}
