package log

import (
	"context"
	"fmt"
	"time"

	"github.com/CYSTCloud/TP/global"
)

type Monitor struct {
	ctx       context.Context
	cancel    context.CancelFunc
	startTime time.Time
	interval  time.Duration
	done      chan struct{}
}

func NewMonitor(parent context.Context) *Monitor {
	ctx, cancel := context.WithCancel(parent)
	return &Monitor{
		ctx:       ctx,
		cancel:    cancel,
		startTime: time.Now(),
		interval:  global.MonitorInterval,
		done:      make(chan struct{}),
	}
}

// StopMonitor 停止并等待后台协程退出
func (m *Monitor) StopMonitor() {
	m.cancel()
	<-m.done
}

func (m *Monitor) StartMonitor() {
	go func() {
		defer close(m.done)
		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				L().Info(fmt.Sprintf("service uptime: %s", formatUptime(time.Since(m.startTime))))
			case <-m.ctx.Done():
				L().Info(fmt.Sprintf("monitor stopped, total uptime: %s", formatUptime(time.Since(m.startTime))))
				return
			}
		}
	}()
}

func formatUptime(elapsed time.Duration) string {
	days := int(elapsed.Hours()) / 24
	hours := int(elapsed.Hours()) % 24
	minutes := int(elapsed.Minutes()) % 60
	seconds := int(elapsed.Seconds()) % 60
	return fmt.Sprintf("%dd %02dh %02dm %02ds", days, hours, minutes, seconds)
}
