package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/schulte-grid/internal/leaderboard"
	"github.com/ytget/schulte-grid/internal/model"
)

// LeaderboardPanel shows the best completion times
type LeaderboardPanel struct {
	localization *Localization

	records []model.Record
	view    leaderboard.View

	// UI components
	container   *fyne.Container
	title       *widget.Label
	list        *widget.List
	placeholder *widget.Label
}

// NewLeaderboardPanel creates an empty leaderboard panel
func NewLeaderboardPanel(localization *Localization) *LeaderboardPanel {
	lp := &LeaderboardPanel{localization: localization}
	lp.createUI()
	lp.SetRecords(nil)
	return lp
}

// createUI creates the user interface for the panel
func (lp *LeaderboardPanel) createUI() {
	lp.title = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	lp.list = widget.NewList(
		func() int {
			return len(lp.view.Rows)
		},
		func() fyne.CanvasObject {
			return lp.createRow()
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			lp.updateRow(id, obj)
		},
	)

	lp.placeholder = widget.NewLabel("")
	lp.placeholder.Alignment = fyne.TextAlignCenter
	lp.placeholder.Wrapping = fyne.TextWrapWord

	lp.container = container.NewBorder(
		lp.title, // top
		nil,      // bottom
		nil,      // left
		nil,      // right
		container.NewStack(lp.list, lp.placeholder),
	)
}

// createRow creates a template leaderboard row
func (lp *LeaderboardPanel) createRow() fyne.CanvasObject {
	rank := widget.NewLabel("")
	duration := widget.NewLabel("")
	tier := canvas.NewText("", TierColor(model.TierFail))
	tier.TextStyle = fyne.TextStyle{Bold: true}
	return container.NewGridWithColumns(3, rank, duration, container.NewCenter(tier))
}

// updateRow fills a template row with row id of the current view
func (lp *LeaderboardPanel) updateRow(id widget.ListItemID, obj fyne.CanvasObject) {
	if id < 0 || id >= len(lp.view.Rows) {
		return
	}
	row := lp.view.Rows[id]

	cols, ok := obj.(*fyne.Container)
	if !ok || len(cols.Objects) != 3 {
		return
	}
	cols.Objects[0].(*widget.Label).SetText(lp.localization.Format(KeyRankFormat, row.Rank))
	cols.Objects[1].(*widget.Label).SetText(row.Duration)

	tier := cols.Objects[2].(*fyne.Container).Objects[0].(*canvas.Text)
	tier.Text = row.TierLabel
	tier.Color = TierColor(tierLevelForKey(row.TierKey))
	tier.Refresh()
}

// Container returns the panel's root object
func (lp *LeaderboardPanel) Container() *fyne.Container {
	return lp.container
}

// SetRecords renders records, which must be sorted fastest first
func (lp *LeaderboardPanel) SetRecords(records []model.Record) {
	lp.records = records
	lp.Refresh()
}

// View returns the currently displayed view
func (lp *LeaderboardPanel) View() leaderboard.View {
	return lp.view
}

// Refresh re-renders the current records in the current language
func (lp *LeaderboardPanel) Refresh() {
	lp.view = leaderboard.Render(lp.records, lp.localization.Scorer(), lp.localization.GetText(KeyLeaderboardEmpty))

	lp.title.SetText(lp.localization.GetText(KeyLeaderboard))
	lp.placeholder.SetText(lp.view.Placeholder)
	if len(lp.view.Rows) == 0 {
		lp.placeholder.Show()
		lp.list.Hide()
	} else {
		lp.placeholder.Hide()
		lp.list.Show()
	}
	lp.list.Refresh()
}
