package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// ShowRulesDialog shows the game rules with a button that starts a game
func ShowRulesDialog(window fyne.Window, localization *Localization, onStart func()) dialog.Dialog {
	body := widget.NewLabel(localization.GetText(KeyRulesBody))
	body.Wrapping = fyne.TextWrapWord

	d := dialog.NewCustomConfirm(
		localization.GetText(KeyRulesTitle),
		localization.GetText(KeyStart),
		localization.GetText(KeyClose),
		body,
		func(start bool) {
			if start && onStart != nil {
				onStart()
			}
		},
		window,
	)
	d.Resize(fyne.NewSize(RulesDialogWidth, RulesDialogHeight))
	d.Show()
	return d
}
