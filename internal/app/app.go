package app

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pstuifzand/foliate/internal/command"
	"github.com/pstuifzand/foliate/internal/config"
	"github.com/pstuifzand/foliate/internal/cursor"
	"github.com/pstuifzand/foliate/internal/editor"
	"github.com/pstuifzand/foliate/internal/history"
	"github.com/pstuifzand/foliate/internal/render"
	"github.com/pstuifzand/foliate/internal/search"
	"github.com/pstuifzand/foliate/internal/socket"
	"github.com/pstuifzand/foliate/internal/storage"
	"github.com/pstuifzand/foliate/internal/ui"
)

// App is the main application controller
type App struct {
	screen    *ui.Screen
	editor    *editor.Editor
	view      *ui.DocumentView
	store     *storage.JSONStore
	backupMgr *storage.BackupManager
	cfg       *config.Config
	messages  *ui.MessageLog
	server    *socket.Server

	sessionID    string
	filePath     string
	statusMsg    string
	statusTime   time.Time
	dirty        bool
	autoSaveTime time.Time
	quit         bool
	showLog      bool

	// search prompt state
	searchActive  bool
	searchQuery   string
	matches       []search.Match
	histMgr       *history.Manager
	searchHistory []string
	historyPos    int
}

const searchHistoryFile = "search.toml"

// NewApp creates a new App instance
func NewApp(filePath string) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}

	store := storage.NewJSONStore(filePath)
	doc, err := store.Load()
	if err != nil {
		screen.Close()
		return nil, fmt.Errorf("failed to load document: %w", err)
	}

	ed, err := editor.New(doc, render.Default(), cfg.Geometry())
	if err != nil {
		screen.Close()
		return nil, fmt.Errorf("failed to build editor: %w", err)
	}
	ed.Focus()

	backupMgr, err := storage.NewBackupManager()
	if err != nil {
		screen.Close()
		return nil, fmt.Errorf("failed to create backup manager: %w", err)
	}

	app := &App{
		screen:       screen,
		editor:       ed,
		view:         ui.NewDocumentView(screen),
		store:        store,
		backupMgr:    backupMgr,
		cfg:          cfg,
		messages:     ui.NewMessageLog(50),
		sessionID:    newSessionID(),
		filePath:     filePath,
		statusMsg:    "Ready",
		statusTime:   time.Now(),
		autoSaveTime: time.Now(),
		historyPos:   -1,
	}

	// Search history survives between sessions. Running without it is
	// fine.
	if histMgr, err := history.NewManager(); err == nil {
		app.histMgr = histMgr
		if entries, err := histMgr.Load(searchHistoryFile); err == nil {
			app.searchHistory = entries
		}
	}

	ed.Subscribe(func() {
		app.refreshMatches()
	})

	// The socket lets another process append paragraphs to this session.
	// Running without it is fine.
	if server, err := socket.NewServer(os.Getpid()); err == nil {
		app.server = server
	} else {
		app.messages.Add("Socket unavailable: " + err.Error())
	}

	return app, nil
}

// newSessionID generates the 8-character ID that groups this session's
// backups.
func newSessionID() string {
	const chars = "abcdefghijklmnopqrstuvwxyz0123456789"
	b := make([]byte, 8)
	for i := range b {
		b[i] = chars[rand.Intn(len(chars))]
	}
	return string(b)
}

// Run starts the main event loop
func (a *App) Run() error {
	defer a.Close()

	if a.screen.HasMouse() {
		a.screen.EnableMouse()
	}

	var remote <-chan socket.Message
	if a.server != nil {
		a.server.Start()
		remote = a.server.Messages()
	}

	// Create a channel for events
	eventChan := make(chan tcell.Event)

	// Start event polling goroutine
	go func() {
		for {
			event := a.screen.PollEvent()
			eventChan <- event
			if event == nil {
				break
			}
		}
	}()

	// Create a ticker for rendering and auto-save checks
	ticker := time.NewTicker(50 * time.Millisecond) // ~20 FPS
	defer ticker.Stop()

	for !a.quit {
		select {
		case ev := <-eventChan:
			if ev != nil {
				a.handleRawEvent(ev)
			}
		case msg := <-remote:
			a.handleRemote(msg)
		case <-ticker.C:
			a.render()

			// Auto-save every 5 seconds if dirty
			if a.dirty && !a.store.ReadOnly && time.Since(a.autoSaveTime) > 5*time.Second {
				if err := a.Save(); err != nil {
					a.SetStatus("Failed to save: " + err.Error())
				} else {
					a.SetStatus("Saved")
				}
			}
		}
	}

	return nil
}

// Close closes the application
func (a *App) Close() error {
	if a.server != nil {
		a.server.Stop()
	}
	if a.screen != nil {
		return a.screen.Close()
	}
	return nil
}

// handleRemote applies a command received over the socket.
func (a *App) handleRemote(msg socket.Message) {
	switch msg.Command {
	case socket.CommandAppendBlock:
		c := a.editor.Cursor()
		if c == nil {
			return
		}
		if err := a.editor.Apply(cursor.Edit(c.Head, cursor.AppendBlock{Text: msg.Text})); err != nil {
			a.SetStatus("Append failed: " + err.Error())
			return
		}
		a.dirty = true
		a.SetStatus("Appended paragraph")
	}
}

// Save backs up and writes the document
func (a *App) Save() error {
	if err := a.backupMgr.CreateBackup(a.editor.Doc(), a.filePath, a.sessionID); err != nil {
		a.messages.Add("Backup failed: " + err.Error())
	}
	if err := a.store.Save(a.editor.Doc()); err != nil {
		return err
	}
	a.dirty = false
	a.autoSaveTime = time.Now()
	return nil
}

// SetStatus sets a transient status message
func (a *App) SetStatus(msg string) {
	a.statusMsg = msg
	a.statusTime = time.Now()
	a.messages.Add(msg)
}

// render renders the current state to the screen
func (a *App) render() {
	a.screen.Clear()

	width := a.screen.GetWidth()
	height := a.screen.GetHeight()

	a.view.FollowCursor(a.editor)
	a.view.Render(a.editor, a.matches)

	// Draw the message log above the status line when toggled on
	if a.showLog {
		entries := a.messages.Recent(10)
		top := height - 2 - len(entries)
		if top < 0 {
			top = 0
		}
		for i, e := range entries {
			line := e.Time.Format("15:04:05") + "  " + e.Text
			a.screen.DrawStringLimited(0, top+i, line, width, a.screen.StatusMessageStyle())
		}
	}

	// Draw search prompt above the status line when active
	if a.searchActive {
		prompt := "Search: " + a.searchQuery
		count := ""
		if a.searchQuery != "" {
			count = fmt.Sprintf("  (%d matches)", len(a.matches))
		}
		a.screen.DrawStringLimited(0, height-2, prompt+count, width, a.screen.StatusMessageStyle())
	}

	// Draw status line, with the modified indicator styled separately
	statusLine := ui.TruncateToWidthWithEllipsis(a.statusLine(), width)
	a.screen.DrawString(0, height-1, statusLine, a.screen.StatusModeStyle())
	if a.dirty {
		marker := " (modified)"
		x := ui.StringWidth(statusLine)
		if x+ui.StringWidth(marker) <= width {
			a.screen.DrawString(x, height-1, marker, a.screen.StatusModifiedStyle())
		}
	}

	a.screen.Show()
}

func (a *App) statusLine() string {
	line := fmt.Sprintf(" %s  page %d", a.filePath, a.view.Page()+1)

	if a.store.ReadOnly {
		line += " [backup: read-only]"
	}
	if a.statusMsg != "Ready" && time.Since(a.statusTime) <= 3*time.Second {
		line += "  " + a.statusMsg
	}
	return line
}

// handleRawEvent processes raw input events
func (a *App) handleRawEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if a.searchActive {
			a.handleSearchKey(ev)
			return
		}
		a.handleKey(ev)
	case *tcell.EventMouse:
		a.handleMouse(ev)
	case *tcell.EventResize:
		a.screen.Size()
		a.screen.Sync()
	}
}

// handleKey dispatches a key event through the binding table.
func (a *App) handleKey(ev *tcell.EventKey) {
	if handler := lookupBinding(ev); handler != nil {
		a.applyCommand(handler)
		return
	}

	switch ev.Key() {
	case tcell.KeyCtrlQ:
		if a.dirty {
			if err := a.Save(); err != nil {
				a.SetStatus("Failed to save: " + err.Error())
				return
			}
		}
		a.quit = true
	case tcell.KeyCtrlS:
		if err := a.Save(); err != nil {
			a.SetStatus("Failed to save: " + err.Error())
		} else {
			a.SetStatus("Saved")
		}
	case tcell.KeyCtrlF:
		a.searchActive = true
		a.searchQuery = ""
		a.matches = nil
	case tcell.KeyCtrlL:
		a.showLog = !a.showLog
	case tcell.KeyCtrlN:
		a.jumpToMatch(true)
	case tcell.KeyCtrlP:
		a.jumpToMatch(false)
	case tcell.KeyPgDn:
		a.view.ShowPage(a.editor.Layout(), a.view.Page()+1)
	case tcell.KeyPgUp:
		a.view.ShowPage(a.editor.Layout(), a.view.Page()-1)
	case tcell.KeyRune:
		if ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) == 0 {
			a.applyEdit(command.InsertText(string(ev.Rune())))
		}
	}
}

// handleSearchKey feeds key events into the search prompt.
func (a *App) handleSearchKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		a.searchActive = false
		a.searchQuery = ""
		a.matches = nil
		a.historyPos = -1
	case tcell.KeyEnter:
		a.recordSearch()
		if len(a.matches) == 0 {
			a.jumpToFuzzyBlock()
			return
		}
		a.jumpToMatch(true)
	case tcell.KeyUp:
		if a.historyPos+1 < len(a.searchHistory) {
			a.historyPos++
			a.searchQuery = a.searchHistory[a.historyPos]
			a.refreshMatches()
		}
	case tcell.KeyDown:
		if a.historyPos > 0 {
			a.historyPos--
			a.searchQuery = a.searchHistory[a.historyPos]
		} else {
			a.historyPos = -1
			a.searchQuery = ""
		}
		a.refreshMatches()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if a.searchQuery != "" {
			runes := []rune(a.searchQuery)
			a.searchQuery = string(runes[:len(runes)-1])
			a.refreshMatches()
		}
	case tcell.KeyRune:
		a.searchQuery += string(ev.Rune())
		a.historyPos = -1
		a.refreshMatches()
	}
}

// recordSearch adds the committed query to the persistent history.
func (a *App) recordSearch() {
	if a.searchQuery == "" {
		return
	}
	a.searchHistory = history.Record(a.searchHistory, a.searchQuery)
	a.historyPos = -1
	if a.histMgr != nil {
		if err := a.histMgr.Save(searchHistoryFile, a.searchHistory); err != nil {
			a.messages.Add("History save failed: " + err.Error())
		}
	}
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	if ev.Buttons()&tcell.Button1 == 0 {
		return
	}
	x, y := ev.Position()
	offset, ok := a.view.HitTest(a.editor.Layout(), x, y)
	if !ok {
		return
	}
	if ev.Modifiers()&tcell.ModShift != 0 {
		if c := a.editor.Cursor(); c != nil {
			a.apply(cursor.MoveTo(offset, c.Anchor))
			return
		}
	}
	a.apply(cursor.Move(offset))
}

func (a *App) refreshMatches() {
	if !a.searchActive || a.searchQuery == "" {
		a.matches = nil
		return
	}
	a.matches = search.Find(a.editor.Render(), a.searchQuery)
}

// jumpToFuzzyBlock moves the caret to the block ranked closest to the
// query when the exact scan found nothing.
func (a *App) jumpToFuzzyBlock() {
	if a.searchQuery == "" {
		return
	}
	start, ok := search.BestBlock(a.editor.Render(), a.searchQuery)
	if !ok {
		a.SetStatus("No match for " + a.searchQuery)
		return
	}
	a.apply(cursor.Move(start))
}

// jumpToMatch moves the caret to the next or previous search match.
func (a *App) jumpToMatch(forward bool) {
	c := a.editor.Cursor()
	if c == nil || len(a.matches) == 0 {
		return
	}

	var m search.Match
	var ok bool
	if forward {
		m, ok = search.Next(a.matches, c.Head+1)
	} else {
		m, ok = search.Previous(a.matches, c.Head)
	}
	if !ok {
		return
	}
	a.apply(cursor.Move(m.Start))
}

// applyCommand runs a navigation or edit command against the editor.
func (a *App) applyCommand(handler command.Handler) {
	tf := handler(a.editor)
	if tf == nil {
		return
	}
	edit := len(tf.Ops) > 0
	if err := a.editor.Apply(tf); err != nil {
		a.SetStatus(err.Error())
		return
	}
	if edit {
		a.dirty = true
	}
}

// applyEdit is applyCommand for handlers that always carry operations.
func (a *App) applyEdit(handler command.Handler) {
	a.applyCommand(handler)
}

func (a *App) apply(tf *cursor.Transformation) {
	if err := a.editor.Apply(tf); err != nil {
		a.SetStatus(err.Error())
	}
}
