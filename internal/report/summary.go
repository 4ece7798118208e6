package report

import (
	"fmt"

	"dirsync/internal/model"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Width(13)
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("204")).Bold(true)
	panelBorder = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

//Render draws the end-of-run summary printed in the single-pass mode.
//err is the outcome of the run; a non-nil one is shown as the reason the run is incomplete.
func Render(results model.SyncResults, err error) string {
	status := okStyle.Render("synchronization completed")
	if err != nil {
		status = warnStyle.Render("synchronization incomplete: " + err.Error())
	}

	files := fmt.Sprintf("%d copied, %d up to date, %d deleted, %d ignored",
		results.FilesCopied, results.FilesUpToDate, results.FilesDeleted, results.FilesIgnored)
	dirs := fmt.Sprintf("%d created, %d deleted, %d ignored",
		results.DirectoriesCreated, results.DirectoriesDeleted, results.DirectoriesIgnored)

	return panelBorder.Render(lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render("dirsync"),
		lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render("files"), files),
		lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render("directories"), dirs),
		status,
	))
}
