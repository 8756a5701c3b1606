package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/stickfigure/pkg/config"
	"github.com/matzehuels/stickfigure/pkg/figure"
	"github.com/matzehuels/stickfigure/pkg/geom"
	"github.com/matzehuels/stickfigure/pkg/pipeline"
)

// Step sizes for angle adjustment, in degrees.
const (
	poseStep     = 5.0
	poseFineStep = 1.0
)

var (
	poseSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	poseDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

var jointLabels = [4]string{"Left arm", "Right arm", "Left leg", "Right leg"}

// =============================================================================
// PoseModel - Interactive pose editor
// =============================================================================

// PoseModel is the bubbletea model for editing joint angles.
type PoseModel struct {
	Angles   figure.JointAngles
	Initial  figure.JointAngles
	Anchor   geom.Point
	Cursor   int
	Accepted bool
}

// NewPoseModel creates a pose editor starting at angles. anchor is where
// the coordinate table places the figure.
func NewPoseModel(angles figure.JointAngles, anchor geom.Point) PoseModel {
	return PoseModel{Angles: angles, Initial: angles, Anchor: anchor}
}

func (m PoseModel) Init() tea.Cmd {
	return nil
}

// joints returns pointers to a's fields in jointLabels order.
func joints(a *figure.JointAngles) [4]*float64 {
	return [4]*float64{&a.LeftArm, &a.RightArm, &a.LeftLeg, &a.RightLeg}
}

// adjust returns a copy of m with the selected joint moved by delta.
func (m PoseModel) adjust(delta float64) PoseModel {
	*joints(&m.Angles)[m.Cursor] += delta
	return m
}

func (m PoseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "enter":
		m.Accepted = true
		return m, tea.Quit
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(jointLabels)-1 {
			m.Cursor++
		}
	case "right", "l":
		m = m.adjust(poseStep)
	case "left", "h":
		m = m.adjust(-poseStep)
	case "shift+right", "L":
		m = m.adjust(poseFineStep)
	case "shift+left", "H":
		m = m.adjust(-poseFineStep)
	case "r":
		m.Angles = m.Initial
	}
	return m, nil
}

func (m PoseModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Edit Pose"))
	b.WriteString("\n")
	b.WriteString(poseDimStyle.Render("↑/↓ joint  ←/→ ±5°  shift ±1°  r reset  ⏎ accept  q quit"))
	b.WriteString("\n\n")

	fig := figure.Compute(m.Anchor, m.Angles)
	segments := [4]geom.Segment{fig.Arms.Left, fig.Arms.Right, fig.Legs.Left, fig.Legs.Right}

	angles := joints(&m.Angles)
	rows := make([][]string, len(jointLabels))
	for i, label := range jointLabels {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		s := segments[i]
		rows[i] = []string{
			cursor,
			label,
			fmt.Sprintf("%.0f°", *angles[i]),
			formatPoint(s.From),
			formatPoint(s.To),
		}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Joint", "Angle", "From", "To").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case row == m.Cursor:
				return poseSelectedStyle
			case col >= 3:
				return poseDimStyle
			}
			return lipgloss.NewStyle()
		})

	b.WriteString(t.Render())
	b.WriteString("\n")
	return b.String()
}

func formatPoint(p geom.Point) string {
	return fmt.Sprintf("(%.1f, %.1f)", p.X, p.Y)
}

// =============================================================================
// Command
// =============================================================================

// poseCommand creates the interactive pose editor.
func (c *CLI) poseCommand() *cobra.Command {
	var (
		pf   poseFlags
		save bool
	)

	cmd := &cobra.Command{
		Use:   "pose",
		Short: "Edit the default pose interactively",
		Long: `Edit the four joint angles in a terminal UI and see where each hand
and foot lands. Accepting prints the pose as TOML, or writes it to the config
file with --save.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			angles := pf.pose(cmd, c.Config.Pose).Resolve()
			anchor := pipeline.DefaultAnchor(c.Config.Canvas.Width, c.Config.Canvas.Height)

			final, err := tea.NewProgram(NewPoseModel(angles, anchor), tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return err
			}
			m, ok := final.(PoseModel)
			if !ok || !m.Accepted {
				printDetail("Pose unchanged")
				return nil
			}
			return c.commitPose(cmd, m.Angles, save)
		},
	}

	pf.register(cmd)
	cmd.Flags().BoolVar(&save, "save", false, "write the accepted pose to the config file")
	return cmd
}

// commitPose saves angles into the config file, or prints them as a
// [pose] table when save is false.
func (c *CLI) commitPose(cmd *cobra.Command, angles figure.JointAngles, save bool) error {
	cfg := c.Config
	cfg.Pose = figure.PoseOf(angles)

	if !save {
		fmt.Fprintf(cmd.OutOrStdout(), "[pose]\nleft_arm = %g\nright_arm = %g\nleft_leg = %g\nright_leg = %g\n",
			angles.LeftArm, angles.RightArm, angles.LeftLeg, angles.RightLeg)
		return nil
	}

	path, err := c.resolvedConfigPath()
	if err != nil {
		return err
	}
	if err := config.Save(cfg, path); err != nil {
		return err
	}
	c.Config = cfg
	printSuccess("Saved pose")
	printFile(path)
	return nil
}
