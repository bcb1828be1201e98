// Command piedemo renders an interactive sample pie chart. Keys:
//
//	r  toggle resolution (standard / braille)
//	l  toggle legend
//	p  cycle legend position
//	y  cycle legend layout
//	a  cycle legend alignment
//	q  quit
package main

import (
	"fmt"
	"os"

	"tuipie/core"
	"tuipie/render"
	"tuipie/style"
	"tuipie/terminal"

	"github.com/gdamore/tcell/v2"
)

func main() {
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "piedemo: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "piedemo: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	chart := render.New(core.SliceSet{
		{Label: "Rust", Value: 45, Color: tcell.ColorRed},
		{Label: "Go", Value: 30, Color: tcell.ColorBlue},
		{Label: "Python", Value: 25, Color: tcell.ColorGreen},
	})

	for {
		draw(screen, chart)

		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Rune() == 'q' {
				return
			}
			switch ev.Rune() {
			case 'r':
				if chart.Config.Resolution == render.Standard {
					chart.Config.Resolution = render.Braille
				} else {
					chart.Config.Resolution = render.Standard
				}
			case 'l':
				chart.Config.ShowLegend = !chart.Config.ShowLegend
			case 'p':
				chart.Config.LegendPosition = (chart.Config.LegendPosition + 1) % 4
			case 'y':
				chart.Config.LegendLayout = (chart.Config.LegendLayout + 1) % 2
			case 'a':
				chart.Config.LegendAlignment = (chart.Config.LegendAlignment + 1) % 3
			}
		}
	}
}

func draw(screen tcell.Screen, chart render.PieChart) {
	screen.Clear()

	width, height := screen.Size()
	area := core.Rect{Width: width, Height: height}

	block := style.Block{
		Title:      "Language Share",
		TitleStyle: style.TitleBold,
		Border:     style.BorderRounded,
	}

	c := terminal.NewScreenCanvas(screen)
	block.Draw(c, area)
	chart.Render(c, block.Inner(area))

	status := fmt.Sprintf(" %s | legend %s/%s/%s | r/l/p/y/a to change, q to quit ",
		chart.Config.Resolution,
		chart.Config.LegendPosition, chart.Config.LegendLayout, chart.Config.LegendAlignment)
	for i, r := range status {
		if i >= width {
			break
		}
		screen.SetContent(i, height-1, r, nil, tcell.StyleDefault.Foreground(tcell.ColorGray))
	}

	screen.Show()
}
