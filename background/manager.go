package background

import (
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/tutolink/tutolink-api/notification"
	"github.com/tutolink/tutolink-api/store"
)

var log = logrus.WithField("prefix", "background")

// DefaultSweepInterval is how often the sweeper scans for lapsed
// sessions when no interval is configured.
const DefaultSweepInterval = time.Minute

// BackgroundManager runs the grace-period sweeper. One manager owns
// one cron instance, so a deployment gets exactly one sweeper.
type BackgroundManager struct {
	store    store.TutoriaCore
	notifier notification.Notifier

	cron *cron.Cron
}

func New(s store.TutoriaCore, notifier notification.Notifier) *BackgroundManager {
	return &BackgroundManager{
		store:    s,
		notifier: notifier,
	}
}

// Start schedules the sweep on a fixed interval. Starting twice is an
// error.
func (m *BackgroundManager) Start(interval time.Duration) error {
	if m.cron != nil {
		return errors.New("background sweeper has started")
	}
	if interval <= 0 {
		interval = DefaultSweepInterval
	}

	m.cron = cron.New()
	if _, err := m.cron.AddFunc(fmt.Sprintf("@every %s", interval), m.Sweep); err != nil {
		m.cron = nil
		return err
	}
	m.cron.Start()

	log.Info("sweeper started, interval ", interval)
	return nil
}

// Stop halts the sweeper. Running sweeps finish.
func (m *BackgroundManager) Stop() {
	if m.cron != nil {
		<-m.cron.Stop().Done()
		m.cron = nil
	}
}
