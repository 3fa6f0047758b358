package gmdh

// plot.go renders a Plotly figure to file and/or a browser window.

import (
	"fmt"
	"math/rand"
	"os"
	"os/exec"
	"strings"
	"time"

	grob "github.com/MetalBlueberry/go-plotly/graph_objects"
	"github.com/MetalBlueberry/go-plotly/offline"
)

// PlotDef carries the plot options a diagnostic plot (PlotConvergence) actually
// exposes to a caller: a title, a size, and where (or whether) to render
// it. Axis titles are fixed by the diagnostic that builds the figure, not
// caller-configurable, since each diagnostic plot has a known x/y meaning.
type PlotDef struct {
	Show     bool    // Show - true = open the rendered graph in Browser
	Title    string  // Title - plot title
	Height   float64 // Height - height of graph, in pixels
	Width    float64 // Width - width of graph, in pixels
	FileName string  // FileName - output file for graph (in html)
}

// Plotter renders fig with layout lay, augmented by pd's title and sizing,
// to pd.FileName and/or a temporary file opened in Browser.
//
//	fig      plotly figure
//	lay      plotly layout (nil is OK); may already carry axis titles
//	pd       PlotDef with title/size/output options
func Plotter(fig *grob.Fig, lay *grob.Layout, pd *PlotDef) error {
	if lay == nil {
		lay = &grob.Layout{}
	}

	if pd.Title != "" {
		lay.Title = &grob.LayoutTitle{Text: strings.ReplaceAll(pd.Title, "\n", "<br>")}
	}
	if pd.Width > 0.0 {
		lay.Width = pd.Width
	}
	if pd.Height > 0.0 {
		lay.Height = pd.Height
	}

	fig.Layout = lay

	if pd.FileName != "" {
		offline.ToHtml(fig, pd.FileName)
	}
	if pd.Show {
		tmp := false
		if pd.FileName == "" {
			tmp = true
			rand.Seed(time.Now().UnixMicro())
			pd.FileName = fmt.Sprintf("%s/plotly%d.html", os.TempDir(), rand.Uint32())
		}

		offline.ToHtml(fig, pd.FileName)
		cmd := exec.Command(Browser, "-url", pd.FileName)

		if e := cmd.Start(); e != nil {
			return e
		}
		time.Sleep(time.Second)

		if tmp {
			// need to pause while the browser loads the graph
			if e := os.Remove(pd.FileName); e != nil {
				return e
			}
		}
	}

	return nil
}
