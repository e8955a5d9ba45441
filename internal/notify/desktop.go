package notify

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"workouttimer/internal/logger"

	"fyne.io/fyne/v2"
	"github.com/godbus/dbus/v5"
)

// Notification is a user-visible message. Notifications sharing a Tag replace each other.
// An empty Icon shows the application logo.
type Notification struct {
	Title string
	Body  string
	Icon  string
	Tag   string
}

// BreakFinished is shown when a break runs out.
var BreakFinished = Notification{
	Title: "Break Finished! 💪",
	Body:  "Time to get back to your workout!",
	Tag:   "break-finished",
}

// Permission is the outcome of the notification opt-in.
type Permission string

const (
	PermissionDefault     Permission = "default"
	PermissionGranted     Permission = "granted"
	PermissionDenied      Permission = "denied"
	PermissionUnavailable Permission = "unavailable"
)

var errNoBackend = errors.New("no notification backend")

const iconFileName = "notification-icon.png"

// backend delivers a notification, replacing the one identified by replaces when non-zero.
type backend interface {
	Show(ctx context.Context, notification Notification, replaces uint32) (uint32, error)
}

// DesktopNotifier shows notifications over the freedesktop D-Bus service,
// falling back to the fyne app notification API.
type DesktopNotifier struct {
	mu         sync.Mutex
	appName    string
	app        fyne.App
	log        *logger.Logger
	icon       []byte
	permission Permission
	backend    backend
	lastIDs    map[string]uint32
	connect    func(appName, iconPath string) (backend, error)
	cacheDir   func() (string, error)
}

// NewDesktopNotifier creates a notifier showing icon, a PNG, as its logo.
// Nothing is shown until Init grants permission.
func NewDesktopNotifier(appName string, app fyne.App, icon []byte, log *logger.Logger) *DesktopNotifier {
	if log == nil {
		log = logger.Nop()
	}
	return &DesktopNotifier{
		appName:    appName,
		app:        app,
		log:        log,
		icon:       icon,
		permission: PermissionDefault,
		lastIDs:    make(map[string]uint32),
		connect:    connectDBus,
		cacheDir:   os.UserCacheDir,
	}
}

// Init performs the opt-in. Disabled notifications are denied; when no
// backend can be reached the capability is unavailable. The backend is
// connected without holding the notifier lock.
func (notifier *DesktopNotifier) Init(enabled bool) Permission {
	if !enabled {
		notifier.log.Infow("notifications disabled by user")
		return notifier.swap(nil, PermissionDenied)
	}

	iconPath, err := notifier.cacheIcon()
	if err != nil {
		notifier.log.Debugw("notification icon not cached", "err", err)
	}
	selected, err := notifier.connect(notifier.appName, iconPath)
	if err != nil {
		notifier.log.Debugw("dbus notifications unavailable", "err", err)
		if notifier.app != nil {
			selected = fyneBackend{app: notifier.app}
		}
	}
	if selected == nil {
		notifier.log.Warnw("notifications unavailable", "err", errNoBackend)
		return notifier.swap(nil, PermissionUnavailable)
	}
	return notifier.swap(selected, PermissionGranted)
}

func (notifier *DesktopNotifier) swap(selected backend, permission Permission) Permission {
	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	notifier.backend = selected
	notifier.permission = permission
	return permission
}

// cacheIcon writes the logo under the user cache dir so the notification
// service can load it by path.
func (notifier *DesktopNotifier) cacheIcon() (string, error) {
	if len(notifier.icon) == 0 {
		return "", nil
	}
	base, err := notifier.cacheDir()
	if err != nil {
		return "", fmt.Errorf("resolve cache dir: %w", err)
	}
	dir := filepath.Join(base, notifier.appName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create icon dir: %w", err)
	}
	path := filepath.Join(dir, iconFileName)
	if err := os.WriteFile(path, notifier.icon, 0o644); err != nil {
		return "", fmt.Errorf("write icon: %w", err)
	}
	return path, nil
}

// Permission returns the current opt-in state.
func (notifier *DesktopNotifier) Permission() Permission {
	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	return notifier.permission
}

// Notify shows the notification. Without permission it is a silent no-op.
func (notifier *DesktopNotifier) Notify(ctx context.Context, notification Notification) error {
	notifier.mu.Lock()
	selected := notifier.backend
	granted := notifier.permission == PermissionGranted
	replaces := notifier.lastIDs[notification.Tag]
	notifier.mu.Unlock()

	if !granted || selected == nil {
		return nil
	}

	id, err := selected.Show(ctx, notification, replaces)
	if err != nil {
		return fmt.Errorf("show notification %q: %w", notification.Tag, err)
	}
	if notification.Tag != "" && id != 0 {
		notifier.mu.Lock()
		notifier.lastIDs[notification.Tag] = id
		notifier.mu.Unlock()
	}
	return nil
}

const (
	dbusDestination = "org.freedesktop.Notifications"
	dbusPath        = dbus.ObjectPath("/org/freedesktop/Notifications")
	dbusInterface   = "org.freedesktop.Notifications"
)

type dbusBackend struct {
	appName  string
	iconPath string
	object   dbus.BusObject
}

func connectDBus(appName, iconPath string) (backend, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return nil, fmt.Errorf("connect session bus: %w", err)
	}
	object := conn.Object(dbusDestination, dbusPath)

	var capabilities []string
	if err := object.Call(dbusInterface+".GetCapabilities", 0).Store(&capabilities); err != nil {
		return nil, fmt.Errorf("query notification capabilities: %w", err)
	}
	return &dbusBackend{appName: appName, iconPath: iconPath, object: object}, nil
}

func (b *dbusBackend) Show(ctx context.Context, notification Notification, replaces uint32) (uint32, error) {
	icon := b.icon(notification)
	var id uint32
	call := b.object.CallWithContext(ctx, dbusInterface+".Notify", 0,
		b.appName,
		replaces,
		icon,
		notification.Title,
		notification.Body,
		[]string{},
		notificationHints(icon),
		int32(-1),
	)
	if err := call.Store(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (b *dbusBackend) icon(notification Notification) string {
	if notification.Icon != "" {
		return notification.Icon
	}
	return b.iconPath
}

func notificationHints(icon string) map[string]dbus.Variant {
	hints := map[string]dbus.Variant{
		"category": dbus.MakeVariant("x-workout.break"),
	}
	if filepath.IsAbs(icon) {
		hints["image-path"] = dbus.MakeVariant("file://" + icon)
	}
	return hints
}

// fyneBackend cannot replace notifications; it always returns id 0.
type fyneBackend struct {
	app fyne.App
}

func (b fyneBackend) Show(_ context.Context, notification Notification, _ uint32) (uint32, error) {
	fyne.Do(func() {
		b.app.SendNotification(fyne.NewNotification(notification.Title, notification.Body))
	})
	return 0, nil
}
