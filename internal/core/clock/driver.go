package clock

import (
	"sync"
	"time"

	"workouttimer/internal/logger"
)

// Target receives ticks from the Driver.
type Target interface {
	BreakTick()
	Tick()
	Active() bool
}

// Options contains runtime options for the Driver.
type Options struct {
	Interval time.Duration
	Logger   *logger.Logger
}

// Driver issues BreakTick then Tick on its target at a fixed interval while armed.
// At most one ticker goroutine is live at a time.
type Driver struct {
	mu      sync.Mutex
	target  Target
	options Options
	stopCh  chan struct{}
	armed   bool
	wg      sync.WaitGroup
}

// New creates a disarmed Driver.
func New(target Target, options Options) *Driver {
	if options.Interval <= 0 {
		options.Interval = time.Second
	}
	if options.Logger == nil {
		options.Logger = logger.Nop()
	}
	return &Driver{target: target, options: options}
}

// Sync arms the driver when the target is active and disarms it otherwise.
// The argument is only a hint; the target is re-read under the driver lock.
func (driver *Driver) Sync(_ bool) {
	driver.mu.Lock()
	defer driver.mu.Unlock()
	if driver.target.Active() {
		driver.armLocked()
		return
	}
	driver.disarmLocked()
}

// Armed reports whether the ticker is running.
func (driver *Driver) Armed() bool {
	driver.mu.Lock()
	defer driver.mu.Unlock()
	return driver.armed
}

// Close disarms the driver and waits for the ticker goroutine to exit.
// It must not be called from the target's tick handlers.
func (driver *Driver) Close() {
	driver.disarm()
	driver.wg.Wait()
}

func (driver *Driver) armLocked() {
	if driver.armed {
		return
	}
	driver.armed = true
	driver.stopCh = make(chan struct{})
	driver.wg.Add(1)
	go driver.run(driver.stopCh)
	driver.options.Logger.Debugw("clock armed", "interval", driver.options.Interval)
}

func (driver *Driver) disarm() {
	driver.mu.Lock()
	defer driver.mu.Unlock()
	driver.disarmLocked()
}

func (driver *Driver) disarmLocked() {
	if !driver.armed {
		return
	}
	close(driver.stopCh)
	driver.armed = false
	driver.options.Logger.Debugw("clock disarmed")
}

func (driver *Driver) run(stopCh chan struct{}) {
	defer driver.wg.Done()
	ticker := time.NewTicker(driver.options.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			select {
			case <-stopCh:
				return
			default:
			}
			driver.target.BreakTick()
			driver.target.Tick()
			if !driver.target.Active() && driver.disarmIfIdle(stopCh) {
				return
			}
		}
	}
}

// disarmIfIdle disarms when stopCh still belongs to the live arming and the
// target is still inactive. It reports whether the loop owning stopCh should exit.
func (driver *Driver) disarmIfIdle(stopCh chan struct{}) bool {
	driver.mu.Lock()
	defer driver.mu.Unlock()
	if !driver.armed || driver.stopCh != stopCh {
		return true
	}
	if driver.target.Active() {
		return false
	}
	driver.disarmLocked()
	return true
}
