package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"activityfinder/internal/config"
	"activityfinder/internal/domain"
	"activityfinder/internal/eventbus"
	"activityfinder/internal/ui/input"
	inputtypes "activityfinder/internal/ui/input/types"
	"activityfinder/internal/ui/services/events"
	"activityfinder/internal/ui/services/filters"
	"activityfinder/internal/ui/services/navigation"
	"activityfinder/internal/ui/services/search"
	"activityfinder/internal/ui/services/selection"
	"activityfinder/internal/ui/state"
	"activityfinder/internal/ui/views"
)

// statusTimeout is how long a status message stays visible
const statusTimeout = 3 * time.Second

// Model is the root Bubble Tea model. It wires the search, filter, selection
// and navigation services together and renders their state.
type Model struct {
	config *config.Config
	logger *zap.SugaredLogger
	bus    events.EventBus
	state  *state.AppState

	help    help.Model
	keys    views.KeyMap
	spinner spinner.Model

	search     *search.Service
	filters    *filters.Service
	selection  *selection.Service
	navigation *navigation.Service

	renderer     *views.Renderer
	inputHandler *input.Handler
	modelCtx     *input.ModelContext
	external     *External

	initialCmd tea.Cmd
	program    *tea.Program
}

// NewModel creates the UI model. ctx bounds every search request; cancel it
// to abort in-flight searches on shutdown.
func NewModel(ctx context.Context, cfg *config.Config, provider search.Provider, bus eventbus.EventBus, logger *zap.SugaredLogger) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := &Model{
		config:       cfg,
		logger:       logger.Named("ui"),
		bus:          events.OrNull(bus),
		state:        state.NewAppState(),
		help:         help.New(),
		keys:         views.DefaultKeyMap(),
		spinner:      sp,
		search:       search.NewService(provider, bus, logger, searchOptions(cfg)),
		filters:      filters.NewService(bus, presetsFromConfig(cfg.Presets)),
		selection:    selection.NewService(bus),
		navigation:   navigation.NewService(),
		renderer:     views.NewRenderer(),
		inputHandler: input.New(),
		external:     NewExternal(),
	}
	m.search.SetBaseContext(ctx)

	// Filter changes and quick searches flow into the orchestrator
	m.filters.SetChangeFunction(m.search.UpdateFilters)
	m.filters.SetQuickSearchFunction(m.search.QuickSearch)
	m.selection.SetResultsFunction(m.search.Activities)
	m.navigation.SetCountFunction(func() int { return len(m.search.Activities()) })

	m.modelCtx = &input.ModelContext{
		Search:     m.search,
		Filters:    m.filters,
		Selection:  m.selection,
		Navigation: m.navigation,
	}

	return m
}

func searchOptions(cfg *config.Config) search.Options {
	opts := search.DefaultOptions()
	if cfg.Search.DiscardStale {
		opts.Policy = search.LatestDispatchWins
	}
	opts.QueueWhileLoading = cfg.Search.QueueWhileLoading
	opts.FilterDebounce = cfg.Search.FilterDebounce.Std()
	opts.RequestTimeout = cfg.Provider.Timeout.Std()
	return opts
}

func presetsFromConfig(pcs []config.PresetConfig) []filters.Preset {
	if len(pcs) == 0 {
		return nil
	}
	presets := make([]filters.Preset, 0, len(pcs))
	for _, pc := range pcs {
		cat, _ := domain.ParseCategory(pc.Category)
		presets = append(presets, filters.Preset{Query: pc.Query, Location: pc.Location, Category: cat})
	}
	return presets
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.external.SetProgram(p)
}

// SetInitialSearch fills the form and submits it once the program starts
func (m *Model) SetInitialSearch(query, location string) {
	if query == "" && location == "" {
		return
	}
	m.inputHandler.SetFormValues(query, location)
	m.search.SetQuery(query)
	m.search.SetLocation(location)
	m.initialCmd = func() tea.Msg { return submitInitialMsg{} }
}

// submitInitialMsg submits the search given on the command line
type submitInitialMsg struct{}

func (m *Model) Init() tea.Cmd {
	m.navigation.SetViewportHeight(views.CardsPerScreen(24)) // Will be updated on first WindowSizeMsg
	return tea.Batch(m.inputHandler.Init(), m.spinner.Tick, m.initialCmd)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.help.Width = msg.Width
		m.navigation.SetViewportHeight(views.CardsPerScreen(msg.Height))
		inputWidth := msg.Width - 14
		if inputWidth < 10 {
			inputWidth = 10
		}
		m.inputHandler.QueryInput().Width = inputWidth
		m.inputHandler.LocationInput().Width = inputWidth
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case submitInitialMsg:
		cmd := m.search.SubmitCurrent()
		return m, tea.Batch(cmd, m.changeMode(inputtypes.ModeBrowse))

	case search.ResultMsg:
		return m, m.handleResult(msg)

	case search.DebounceMsg:
		return m, m.search.HandleDebounce(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case EventMsg:
		return m, m.handleEvent(msg.Event)

	case linkOpenedMsg:
		if msg.err != nil {
			m.logger.Warnw("open link failed", "url", msg.url, "error", msg.err)
			return m, m.setError(fmt.Sprintf("Failed to open link: %v", msg.err))
		}
		return m, m.setStatus("Opened in browser")

	case linkCopiedMsg:
		if msg.err != nil {
			m.logger.Warnw("copy link failed", "url", msg.url, "error", msg.err)
			return m, m.setError(fmt.Sprintf("Failed to copy link: %v", msg.err))
		}
		return m, m.setStatus("Link copied to clipboard")

	case descriptionPagerMsg:
		if msg.err != nil {
			// Reported on the bus; the status bar picks it up from there
			m.logger.Warnw("description pager failed", "activity", msg.activityID, "error", msg.err)
			m.bus.Publish(domain.ErrorEvent{Message: "Could not show description", Err: msg.err})
		}
		return m, nil

	case pauseRenderingMsg:
		m.state.InPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.state.InPagerMode = false
		return m, nil

	case clearStatusMsg:
		m.state.ClearStatus()
		return m, nil
	}

	return m, m.inputHandler.Update(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.state.ShowHelp {
		switch msg.String() {
		case "ctrl+c":
			return m.quit()
		case "?", "esc", "q":
			m.state.ShowHelp = false
		}
		return nil
	}

	actions, cmd := m.inputHandler.HandleKey(msg, m.modelCtx)
	cmds := []tea.Cmd{cmd}
	for _, action := range actions {
		cmds = append(cmds, m.processAction(action))
	}
	return tea.Batch(cmds...)
}

// handleResult applies a search result and keeps the cursor and the detail
// view consistent with the new result set
func (m *Model) handleResult(msg search.ResultMsg) tea.Cmd {
	applied := m.search.Policy() == search.LastResolvedWins || msg.Seq == m.search.Seq()

	cmd := m.search.HandleResult(msg)

	if applied {
		m.navigation.Reset()
		m.selection.Reconcile(m.search.Activities())
		if m.inputHandler.CurrentMode() == inputtypes.ModeDetail && !m.selection.IsOpen() {
			return tea.Batch(cmd, m.changeMode(inputtypes.ModeBrowse))
		}
	}
	return cmd
}

func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case domain.ErrorEvent:
		return m.setError(e.Message)
	}
	return nil
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigation.Navigate(navigation.Direction(a.Direction))

	case inputtypes.UpdateFormAction:
		switch a.Field {
		case inputtypes.FieldQuery:
			m.search.SetQuery(a.Text)
		case inputtypes.FieldLocation:
			m.search.SetLocation(a.Text)
		}

	case inputtypes.SubmitSearchAction:
		return m.search.SubmitCurrent()

	case inputtypes.RetryAction:
		return m.search.Retry()

	case inputtypes.QuickSearchAction:
		presets := m.filters.Presets()
		if a.Index < 0 || a.Index >= len(presets) {
			return nil
		}
		p := presets[a.Index]
		m.inputHandler.SetFormValues(p.Query, p.Location)
		return m.filters.RunPreset(a.Index)

	case inputtypes.ToggleCategoryAction:
		return m.filters.ToggleCategory(a.Category)

	case inputtypes.SetTimeFilterAction:
		return m.filters.SetTimeFilter(a.TimeFilter)

	case inputtypes.ClearFiltersAction:
		return tea.Batch(m.filters.Clear(), m.setStatus("Filters cleared"))

	case inputtypes.FilterCursorAction:
		m.state.FilterCursor = a.Index

	case inputtypes.OpenDetailAction:
		index := a.Index
		if index < 0 {
			index = m.navigation.Cursor()
		}
		activity, ok := m.modelCtx.ActivityAt(index)
		if !ok {
			return nil
		}
		if m.selection.Select(activity) {
			return m.changeMode(inputtypes.ModeDetail)
		}

	case inputtypes.CloseDetailAction:
		m.selection.Close()

	case inputtypes.OpenLinkAction:
		return m.openLink()

	case inputtypes.CopyLinkAction:
		return m.copyLink()

	case inputtypes.ShowDescriptionAction:
		return m.showDescription()

	case inputtypes.ToggleHelpAction:
		m.state.ShowHelp = !m.state.ShowHelp

	case inputtypes.StatusAction:
		return m.setStatus(a.Message)

	case inputtypes.QuitAction:
		return m.quit()
	}
	return nil
}

func (m *Model) changeMode(mode inputtypes.Mode) tea.Cmd {
	var cmds []tea.Cmd
	for _, action := range m.inputHandler.ChangeMode(mode, m.modelCtx) {
		cmds = append(cmds, m.processAction(action))
	}
	return tea.Batch(cmds...)
}

func (m *Model) openLink() tea.Cmd {
	activity, ok := m.selection.Current()
	if !ok || activity.Link == "" {
		return nil
	}
	url := activity.Link
	return func() tea.Msg {
		return linkOpenedMsg{url: url, err: m.external.OpenURL(url)}
	}
}

func (m *Model) copyLink() tea.Cmd {
	activity, ok := m.selection.Current()
	if !ok || activity.Link == "" {
		return nil
	}
	url := activity.Link
	return func() tea.Msg {
		return linkCopiedMsg{url: url, err: m.external.CopyToClipboard(url)}
	}
}

// showDescription returns a command that pages the full description using ov
func (m *Model) showDescription() tea.Cmd {
	activity, ok := m.selection.Current()
	if !ok {
		return nil
	}
	if m.program == nil {
		return m.setError("Pager not available")
	}
	content := views.RenderDescriptionPlain(activity)
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.external.ShowInPager(content)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return descriptionPagerMsg{activityID: activity.ID, err: err}
	}
}

func (m *Model) quit() tea.Cmd {
	m.search.Cancel()
	return tea.Quit
}

func (m *Model) setStatus(msg string) tea.Cmd {
	m.state.SetStatus(msg)
	return clearStatusAfter()
}

func (m *Model) setError(msg string) tea.Cmd {
	m.state.SetError(msg)
	return clearStatusAfter()
}

func clearStatusAfter() tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m *Model) View() string {
	if m.state.InPagerMode {
		return ""
	}
	return m.renderer.Render(m.viewState())
}

func (m *Model) viewState() views.ViewState {
	vs := views.ViewState{
		Width:          m.state.Width,
		Height:         m.state.Height,
		Mode:           m.inputHandler.CurrentMode(),
		QueryInput:     m.inputHandler.QueryInput().View(),
		LocationInput:  m.inputHandler.LocationInput().View(),
		FocusedField:   m.inputHandler.FocusedField(),
		CanSubmit:      m.modelCtx.CanSubmit(),
		Search:         m.search.State(),
		Filters:        m.filters.Filters(),
		FilterCursor:   m.state.FilterCursor,
		Presets:        m.filters.Presets(),
		Cursor:         m.navigation.Cursor(),
		ViewportOffset: m.navigation.ViewportOffset(),
		ViewportHeight: m.navigation.ViewportHeight(),
		StatusMessage:  m.state.StatusMessage,
		StatusIsError:  m.state.StatusIsError,
		ShowHelp:       m.state.ShowHelp,
		HelpModel:      m.help,
		Keys:           m.keys,
		Spinner:        m.spinner.View(),
		SkeletonCount:  m.config.UI.SkeletonCount,
		ShowImages:     m.config.UI.ShowImages,
	}
	if activity, ok := m.selection.Current(); ok {
		vs.Detail = &activity
	}
	return vs
}
