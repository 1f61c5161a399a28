// Package ui builds the Fyne windows and dialogs: the sidebar root with
// its speed-dial grid, the list creator dialog and the speed dial editor
// dialog. Widgets stay thin; form state and validation live in the
// listcreator and speeddial packages.
package ui
