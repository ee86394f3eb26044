package dashboard

// Modal identifies one of the dashboard's overlay panels.
type Modal string

const (
	ModalAddWater Modal = "add-water"
	ModalSettings Modal = "settings"
)

// ParseModal maps a panel name back to a Modal.
func ParseModal(name string) (Modal, bool) {
	switch Modal(name) {
	case ModalAddWater, ModalSettings:
		return Modal(name), true
	}
	return "", false
}

// Open shows the panel.
func (c *Controller) Open(m Modal) {
	c.setModal(m, true)
}

// Close hides the panel.
func (c *Controller) Close(m Modal) {
	c.setModal(m, false)
}

// ClickOverlay handles a click on the panel's overlay. Only clicks that land
// on the overlay background itself, outside the panel content, close it.
func (c *Controller) ClickOverlay(m Modal, onBackground bool) {
	if onBackground {
		c.Close(m)
	}
}

// Visible reports whether the panel is shown.
func (c *Controller) Visible(m Modal) bool {
	return c.modals[m]
}

func (c *Controller) setModal(m Modal, visible bool) {
	c.modals[m] = visible
	c.view.ShowModal(m, visible)
}
