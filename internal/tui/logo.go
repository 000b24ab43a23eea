package tui

const Logo = `
▀█▀ █ █ █▀█ █ █ █▀█ ▄▀█
 █  █▀█ █▄█ █▄█ █▀▄ █▀█`

func (m *Model) LogoView() string {
	return m.theme.Base().Bold(true).Render(Logo)
}
