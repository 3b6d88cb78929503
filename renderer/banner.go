package renderer

import "github.com/charmbracelet/lipgloss"

// BannerText is displayed while the portfolio is loading.
const BannerText = "Crypto Portfolio Loading..."

var bannerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("12")).
	Border(lipgloss.RoundedBorder()).
	Padding(0, 2)

// Banner renders text as a splash banner.
func Banner(text string) string {
	return bannerStyle.Render(text)
}

var totalStyle = lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("12"))

// TotalLine renders the portfolio total line printed after the table.
func TotalLine(r *Report) string {
	return totalStyle.Render("Portfolio Total: " + r.Total)
}
