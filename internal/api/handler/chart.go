package handler

import (
	"fmt"
	"strings"

	"github.com/vfg2006/smartshop-insights/internal/domain"
	"github.com/vfg2006/smartshop-insights/pkg/utils"
)

const (
	chartWidth   = 720
	chartHeight  = 280
	chartPadding = 40
	chartTicks   = 4
)

type chartPoint struct {
	X, Y  float64
	Label string
	Value string
}

type chartTick struct {
	Y     float64
	Label string
}

// lineChart é o gráfico SVG da previsão: eixo X "Day i", eixo Y valor previsto
type lineChart struct {
	Width, Height int
	Left, Right   float64
	Top, Bottom   float64
	Polyline      string
	Points        []chartPoint
	Ticks         []chartTick
}

func newLineChart(series domain.ForecastSeries) *lineChart {
	if series.Horizon == 0 {
		return nil
	}

	c := &lineChart{
		Width:  chartWidth,
		Height: chartHeight,
		Left:   chartPadding,
		Right:  chartWidth - chartPadding/2,
		Top:    chartPadding / 2,
		Bottom: chartHeight - chartPadding,
	}

	// Eixo Y sempre parte de zero: valores previstos não são negativos
	yMax := series.Max
	if yMax <= 0 {
		yMax = 1
	}

	plotW := c.Right - c.Left
	plotH := c.Bottom - c.Top

	step := 0.0
	if series.Horizon > 1 {
		step = plotW / float64(series.Horizon-1)
	}

	coords := make([]string, 0, series.Horizon)
	for i, p := range series.Points {
		x := c.Left + step*float64(i)
		if series.Horizon == 1 {
			x = c.Left + plotW/2
		}
		y := c.Bottom - (p.PredictedValue/yMax)*plotH

		coords = append(coords, fmt.Sprintf("%.1f,%.1f", x, y))
		c.Points = append(c.Points, chartPoint{
			X:     x,
			Y:     y,
			Label: fmt.Sprintf("Day %d", p.Day),
			Value: utils.FormatNumber(p.PredictedValue),
		})
	}
	c.Polyline = strings.Join(coords, " ")

	for i := 0; i <= chartTicks; i++ {
		v := yMax * float64(i) / chartTicks
		c.Ticks = append(c.Ticks, chartTick{
			Y:     c.Bottom - (v/yMax)*plotH,
			Label: utils.FormatNumber(v),
		})
	}

	return c
}

// ShowLabel evita sobreposição dos rótulos do eixo X em horizontes longos
func (c *lineChart) ShowLabel(i int) bool {
	n := len(c.Points)
	if n <= 14 {
		return true
	}
	every := (n + 13) / 14
	return i%every == 0 || i == n-1
}
