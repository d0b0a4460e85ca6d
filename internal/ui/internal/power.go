package internal

import (
	"errors"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"

	"github.com/yiponline/shelf/internal/logging"
)

// LongPressDuration separates a suspend tap from a shutdown hold.
const LongPressDuration = 2 * time.Second

type PowerAction int

const (
	PowerActionNone PowerAction = iota
	PowerActionSuspend
	PowerActionShutdown
)

func (a PowerAction) String() string {
	switch a {
	case PowerActionSuspend:
		return "suspend"
	case PowerActionShutdown:
		return "shutdown"
	}
	return "none"
}

// PowerButtonConfig names the evdev device and the commands run on press.
type PowerButtonConfig struct {
	DevicePath      string
	SuspendCommand  string
	ShutdownCommand string
}

// PowerButton watches an evdev device for KEY_POWER.
type PowerButton struct {
	cfg     PowerButtonConfig
	device  *evdev.InputDevice
	running atomic.Bool
	pressed atomic.Bool
	since   atomic.Time
	wg      sync.WaitGroup
	now     func() time.Time
	run     func(command string) error
}

func NewPowerButton(cfg PowerButtonConfig) *PowerButton {
	return &PowerButton{
		cfg: cfg,
		now: time.Now,
		run: runShell,
	}
}

func runShell(command string) error {
	cmd := exec.Command("/bin/sh", "-c", command)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Start opens the device and reads it in the background. A missing device
// path leaves the watcher disabled.
func (p *PowerButton) Start() error {
	if p.cfg.DevicePath == "" {
		return nil
	}
	if !p.running.CompareAndSwap(false, true) {
		return nil
	}

	dev, err := evdev.Open(p.cfg.DevicePath)
	if err != nil {
		p.running.Store(false)
		return err
	}
	p.device = dev

	p.wg.Add(1)
	go p.loop()
	logging.Internal().Debug("Power button watcher started", "device", p.cfg.DevicePath)
	return nil
}

func (p *PowerButton) loop() {
	defer p.wg.Done()
	for p.running.Load() {
		ev, err := p.device.ReadOne()
		if err != nil {
			if p.running.Load() && !errors.Is(err, os.ErrClosed) {
				logging.Internal().Warn("Power button read failed", "error", err)
			}
			return
		}
		p.handle(ev.Type, ev.Code, ev.Value)
	}
}

// handle tracks press and release of KEY_POWER and runs the matching command.
func (p *PowerButton) handle(typ evdev.EvType, code evdev.EvCode, value int32) PowerAction {
	if typ != evdev.EV_KEY || code != evdev.KEY_POWER {
		return PowerActionNone
	}

	switch value {
	case 1:
		p.pressed.Store(true)
		p.since.Store(p.now())
		return PowerActionNone
	case 0:
		if !p.pressed.Swap(false) {
			return PowerActionNone
		}
	default:
		return PowerActionNone
	}

	action := PowerActionSuspend
	if p.now().Sub(p.since.Load()) >= LongPressDuration {
		action = PowerActionShutdown
	}

	command := p.cfg.SuspendCommand
	if action == PowerActionShutdown {
		command = p.cfg.ShutdownCommand
	}
	if command == "" {
		return action
	}

	logging.Internal().Info("Power button pressed", "action", action.String())
	if err := p.run(command); err != nil {
		logging.Internal().Error("Power command failed", "action", action.String(), "error", err)
	}
	return action
}

// Stop closes the device and waits for the reader to exit.
func (p *PowerButton) Stop() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	if p.device != nil {
		_ = p.device.Close()
	}
	p.wg.Wait()
}
