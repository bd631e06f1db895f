package player

import (
	"crypto/rand"
	"fmt"
	"net"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/subplay/subplay/log"
	"github.com/subplay/subplay/where"
)

const (
	socketWaitRetries = 10
	socketWaitDelay   = 300 * time.Millisecond
	quitTimeout       = 3 * time.Second
	eventBuffer       = 64
)

// MPV is a single mpv process controlled over JSON-IPC. Reads are served
// from values cached off the event stream, so they never touch the socket.
type MPV struct {
	binary     string
	volumeMax  float64
	socketPath string
	cmd        *exec.Cmd
	listener   *EventListener

	exited  chan struct{} // closed when the mpv process exits
	closing chan struct{}
	events  chan Event

	mu sync.Mutex // serializes IPC requests

	state    sync.Mutex
	timePos  float64
	duration float64
	paused   bool
	volume   float64
	gain     float64
}

// NewMPV creates a player for binary. Nothing is started until Start or Load.
func NewMPV(binary string, volumeMax float64) *MPV {
	return &MPV{
		binary:    binary,
		volumeMax: volumeMax,
		closing:   make(chan struct{}),
		events:    make(chan Event, eventBuffer),
		paused:    true,
		volume:    1,
		gain:      1,
	}
}

// Events delivers mpv notifications. The channel is closed after EventExit.
func (m *MPV) Events() <-chan Event {
	return m.events
}

// Wait returns a channel that is closed when the mpv process exits.
func (m *MPV) Wait() <-chan struct{} {
	return m.exited
}

// Socket returns the IPC socket path.
func (m *MPV) Socket() string {
	return m.socketPath
}

// Running reports whether the process has been started and has not exited.
func (m *MPV) Running() bool {
	if m.exited == nil {
		return false
	}
	select {
	case <-m.exited:
		return false
	default:
		return true
	}
}

// Start launches an idle mpv window and subscribes to its events.
func (m *MPV) Start() error {
	if m.Running() {
		return nil
	}

	if m.socketPath == "" {
		randomBytes := make([]byte, 4)
		if _, err := rand.Read(randomBytes); err != nil {
			return fmt.Errorf("generate socket name: %w", err)
		}
		m.socketPath = filepath.Join(where.Temp(), fmt.Sprintf("subplay-%x.sock", randomBytes))
	}

	m.cmd = exec.Command(m.binary, m.args()...)

	// Detach from the terminal's process group so Ctrl+C reaches the TUI only.
	m.cmd.SysProcAttr = sysProcAttr()
	m.cmd.Stdout = nil
	m.cmd.Stderr = nil
	m.cmd.Stdin = nil

	if err := m.cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", m.binary, err)
	}

	m.exited = make(chan struct{})
	go func() {
		_ = m.cmd.Wait()
		close(m.exited)
	}()

	if err := m.waitForSocket(); err != nil {
		select {
		case <-m.exited:
		default:
			log.Warnf("killing mpv: socket never became ready")
			_ = killProcess(m.cmd)
		}
		return fmt.Errorf("mpv socket not ready: %w", err)
	}

	return m.listen()
}

// listen starts the event listener and the pump that feeds Events.
func (m *MPV) listen() error {
	raw := make(chan Event, eventBuffer)
	m.listener = NewEventListener(m.socketPath, raw)
	if err := m.listener.Start(); err != nil {
		return err
	}

	go m.pump(raw)
	return nil
}

func (m *MPV) pump(raw <-chan Event) {
	defer close(m.events)

	for {
		select {
		case event := <-raw:
			m.observe(event)
			select {
			case m.events <- event:
			case <-m.closing:
				return
			}
		case <-m.exited:
			select {
			case m.events <- Event{Name: EventExit}:
			case <-m.closing:
			}
			return
		case <-m.closing:
			return
		}
	}
}

// observe updates the cached playback values.
func (m *MPV) observe(event Event) {
	m.state.Lock()
	defer m.state.Unlock()

	switch event.Name {
	case EventTimePos:
		if t, ok := event.Float(); ok {
			m.timePos = t
		}
	case EventDuration:
		if d, ok := event.Float(); ok {
			m.duration = d
		}
	case EventPause:
		if p, ok := event.Bool(); ok {
			m.paused = p
		}
	}
}

func (m *MPV) args() []string {
	return []string{
		"--no-terminal",
		"--really-quiet",
		fmt.Sprintf("--input-ipc-server=%s", m.socketPath),
		fmt.Sprintf("--volume-max=%g", m.volumeMax),
		"--force-window=yes",
		"--idle=yes",
		"--keep-open=yes",
		"--pause",
	}
}

// waitForSocket polls until the mpv IPC socket is accepting connections.
func (m *MPV) waitForSocket() error {
	for i := 0; i < socketWaitRetries; i++ {
		time.Sleep(socketWaitDelay)

		select {
		case <-m.exited:
			return fmt.Errorf("mpv exited before socket was ready")
		default:
		}

		conn, err := net.Dial("unix", m.socketPath)
		if err == nil {
			conn.Close()
			return nil
		}
	}
	return fmt.Errorf("socket %s not ready after %d attempts", m.socketPath, socketWaitRetries)
}

// Load replaces the current file with src, starting mpv first if needed.
func (m *MPV) Load(src string) error {
	target, err := sanitizeMediaTarget(src)
	if err != nil {
		return fmt.Errorf("invalid media target: %w", err)
	}

	if err := m.Start(); err != nil {
		return err
	}

	m.state.Lock()
	m.timePos, m.duration = 0, 0
	m.state.Unlock()

	if _, err := m.sendCommand("loadfile", target, "replace"); err != nil {
		return fmt.Errorf("load %s: %w", target, err)
	}

	return m.Set("force-media-title", sanitizeTitle(filepath.Base(target)))
}

// CurrentTime is the last reported playback position in seconds.
func (m *MPV) CurrentTime() float64 {
	m.state.Lock()
	defer m.state.Unlock()
	return m.timePos
}

// SetCurrentTime seeks to an absolute position in seconds.
func (m *MPV) SetCurrentTime(seconds float64) error {
	if _, err := m.sendCommand("seek", seconds, "absolute"); err != nil {
		return err
	}

	m.state.Lock()
	m.timePos = seconds
	m.state.Unlock()
	return nil
}

// Duration is the length of the loaded file, zero while unknown.
func (m *MPV) Duration() float64 {
	m.state.Lock()
	defer m.state.Unlock()
	return m.duration
}

// Paused reports the last known pause state.
func (m *MPV) Paused() bool {
	m.state.Lock()
	defer m.state.Unlock()
	return m.paused
}

// Play resumes playback.
func (m *MPV) Play() error {
	return m.Set("pause", false)
}

// Pause suspends playback.
func (m *MPV) Pause() error {
	return m.Set("pause", true)
}

// SetVolume sets the element volume in [0, 1].
func (m *MPV) SetVolume(volume float64) error {
	m.state.Lock()
	m.volume = volume
	m.state.Unlock()
	return m.applyVolume()
}

// SetGain sets the amplification applied on top of the volume.
func (m *MPV) SetGain(gain float64) error {
	m.state.Lock()
	m.gain = gain
	m.state.Unlock()
	return m.applyVolume()
}

func (m *MPV) applyVolume() error {
	m.state.Lock()
	v := mpvVolume(m.volume, m.gain, m.volumeMax)
	m.state.Unlock()
	return m.Set("volume", v)
}

// mpvVolume maps volume and gain onto mpv's percent scale, capped at limit.
func mpvVolume(volume, gain, limit float64) float64 {
	v := volume * gain * 100
	return min(v, limit)
}

// SetFullScreen switches the mpv window in or out of fullscreen.
func (m *MPV) SetFullScreen(fullScreen bool) error {
	return m.Set("fullscreen", fullScreen)
}

// Set writes an mpv property.
func (m *MPV) Set(property string, value any) error {
	_, err := m.sendCommand("set_property", property, value)
	return err
}

// Close quits mpv and releases the socket.
func (m *MPV) Close() error {
	select {
	case <-m.closing:
		return nil
	default:
		close(m.closing)
	}

	if m.listener != nil {
		m.listener.Stop()
	}

	if !m.Running() {
		return nil
	}

	_, _ = m.sendCommand("quit")

	select {
	case <-m.exited:
	case <-time.After(quitTimeout):
		_ = killProcess(m.cmd)
	}

	_ = os.Remove(m.socketPath)

	return nil
}

// sanitizeMediaTarget validates that a target is safe to pass to mpv.
func sanitizeMediaTarget(link string) (string, error) {
	l := strings.TrimSpace(link)
	if l == "" {
		return "", fmt.Errorf("empty target")
	}

	if strings.ContainsAny(l, "\x00\n\r") {
		return "", fmt.Errorf("invalid control characters in target")
	}

	// would be parsed as an option
	if strings.HasPrefix(l, "-") {
		return "", fmt.Errorf("target must not start with '-' (looks like a flag)")
	}

	if strings.Contains(l, "://") {
		u, err := url.Parse(l)
		if err != nil {
			return "", fmt.Errorf("invalid URL: %w", err)
		}
		switch strings.ToLower(u.Scheme) {
		case "http", "https", "file":
			return l, nil
		default:
			return "", fmt.Errorf("unsupported URL scheme: %s", u.Scheme)
		}
	}

	abs, err := filepath.Abs(l)
	if err != nil {
		return filepath.Clean(l), nil
	}
	return abs, nil
}

// sanitizeTitle flattens a title onto one line.
func sanitizeTitle(title string) string {
	t := strings.NewReplacer("\n", " ", "\r", " ", "\t", " ", "\x00", "").Replace(title)
	return strings.TrimSpace(t)
}
