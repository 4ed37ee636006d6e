package tui

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	content := titleStyle.Render("Could not start") + "\n\n" + m.message + "\n\n" +
		helpStyle.Render("r retry  q quit")
	return overlayBoxStyle.Render(content)
}
