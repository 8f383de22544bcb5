package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Color definitions using AdaptiveColor for automatic light/dark mode switching
var (
	PrimaryColor = lipgloss.AdaptiveColor{
		Light: "#007ACC",
		Dark:  "#3D9EFF",
	}

	SecondaryColor = lipgloss.AdaptiveColor{
		Light: "#6C757D",
		Dark:  "#A0A8B0",
	}

	SuccessColor = lipgloss.AdaptiveColor{
		Light: "#28A745",
		Dark:  "#4CDD76",
	}

	ErrorColor = lipgloss.AdaptiveColor{
		Light: "#DC3545",
		Dark:  "#FF6B7D",
	}

	WarningColor = lipgloss.AdaptiveColor{
		Light: "#FFC107",
		Dark:  "#FFD54F",
	}

	HeadingColor = lipgloss.AdaptiveColor{
		Light: "#212529",
		Dark:  "#F8F9FA",
	}

	MutedColor = lipgloss.AdaptiveColor{
		Light: "#6C757D",
		Dark:  "#ADB5BD",
	}
)
