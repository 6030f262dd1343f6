package widgets

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/adaptive-layout/internal/adaptive"
	"github.com/piwi3910/adaptive-layout/internal/model"
)

// Panel background colors, shared by the scaffold and the preview.
var panelColors = map[adaptive.Panel]color.NRGBA{
	adaptive.PanelList:      {R: 0xE3, G: 0xF2, B: 0xFD, A: 0xFF},
	adaptive.PanelDetail:    {R: 0xC8, G: 0xE6, B: 0xC9, A: 0xFF},
	adaptive.PanelAnalytics: {R: 0xFF, G: 0xF9, B: 0xC4, A: 0xFF},
}

var (
	outlineColor   = color.NRGBA{R: 60, G: 60, B: 60, A: 255}
	bottomBarColor = color.NRGBA{R: 96, G: 125, B: 139, A: 255}
	hingeColor     = color.NRGBA{R: 244, G: 67, B: 54, A: 255}
)

// BottomBarHeightDp is the height reserved for the bottom navigation bar.
const BottomBarHeightDp = 56

// PanelColor returns the background color of a panel.
func PanelColor(p adaptive.Panel) color.NRGBA {
	if c, ok := panelColors[p]; ok {
		return c
	}
	return color.NRGBA{R: 240, G: 240, B: 240, A: 255}
}

// DevicePreview draws a scaled outline of a device with the panels its layout
// plan shows and the hinges of its posture.
type DevicePreview struct {
	widget.BaseWidget
	widthDp   int
	heightDp  int
	hinges    []model.HingeInfo
	plan      adaptive.Plan
	maxWidth  float32
	maxHeight float32
}

// NewDevicePreview creates an empty preview that scales devices to fit
// within maxW x maxH.
func NewDevicePreview(maxW, maxH float32) *DevicePreview {
	dp := &DevicePreview{
		maxWidth:  maxW,
		maxHeight: maxH,
	}
	dp.ExtendBaseWidget(dp)
	return dp
}

// SetDevice replaces the previewed device and redraws.
func (dp *DevicePreview) SetDevice(widthDp, heightDp int, hinges []model.HingeInfo, plan adaptive.Plan) {
	dp.widthDp = widthDp
	dp.heightDp = heightDp
	dp.hinges = append([]model.HingeInfo(nil), hinges...)
	dp.plan = plan
	dp.Refresh()
}

func (dp *DevicePreview) CreateRenderer() fyne.WidgetRenderer {
	return newDevicePreviewRenderer(dp)
}

// scale fits the device into the preview bounds. It is 0 when there is
// nothing to draw.
func (dp *DevicePreview) scale() float32 {
	if dp.widthDp <= 0 || dp.heightDp <= 0 {
		return 0
	}
	scaleX := dp.maxWidth / float32(dp.widthDp)
	scaleY := dp.maxHeight / float32(dp.heightDp)
	if scaleY < scaleX {
		return scaleY
	}
	return scaleX
}

type devicePreviewRenderer struct {
	dp      *DevicePreview
	objects []fyne.CanvasObject
}

func newDevicePreviewRenderer(dp *DevicePreview) *devicePreviewRenderer {
	r := &devicePreviewRenderer{dp: dp}
	r.rebuild()
	return r
}

func (r *devicePreviewRenderer) rebuild() {
	r.objects = nil

	scale := r.dp.scale()
	if scale == 0 {
		msg := canvas.NewText("No device to preview", color.NRGBA{R: 128, G: 128, B: 128, A: 255})
		msg.TextSize = 11
		r.objects = append(r.objects, msg)
		return
	}

	canvasW := float32(r.dp.widthDp) * scale
	canvasH := float32(r.dp.heightDp) * scale

	contentH := canvasH
	if r.dp.plan.ShowBottomBar {
		barH := BottomBarHeightDp * scale
		if barH > canvasH/3 {
			barH = canvasH / 3
		}
		contentH -= barH

		bar := canvas.NewRectangle(bottomBarColor)
		bar.Resize(fyne.NewSize(canvasW, barH))
		bar.Move(fyne.NewPos(0, contentH))
		r.objects = append(r.objects, bar)
	}

	// Panels
	x := float32(0)
	widths := r.dp.plan.Widths(canvasW)
	for i, slot := range r.dp.plan.Slots {
		rect := canvas.NewRectangle(PanelColor(slot.Panel))
		rect.StrokeColor = color.NRGBA{R: 30, G: 30, B: 30, A: 80}
		rect.StrokeWidth = 1
		rect.Resize(fyne.NewSize(widths[i], contentH))
		rect.Move(fyne.NewPos(x, 0))
		r.objects = append(r.objects, rect)

		// Label (only if big enough)
		if widths[i] > 40 && contentH > 16 {
			label := canvas.NewText(slot.Panel.String(), color.Black)
			label.TextSize = 10
			label.Move(fyne.NewPos(x+3, 2))
			r.objects = append(r.objects, label)
		}
		x += widths[i]
	}

	// Device outline
	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = outlineColor
	border.StrokeWidth = 2
	border.CornerRadius = 6
	border.Resize(fyne.NewSize(canvasW, canvasH))
	r.objects = append(r.objects, border)

	r.drawHinges(scale)

	size := canvas.NewText(fmt.Sprintf("%d x %d dp", r.dp.widthDp, r.dp.heightDp), outlineColor)
	size.TextSize = 9
	size.Move(fyne.NewPos(0, canvasH+2))
	r.objects = append(r.objects, size)
}

// drawHinges draws each fold seam as a red line across the device.
func (r *devicePreviewRenderer) drawHinges(scale float32) {
	for _, h := range r.dp.hinges {
		line := canvas.NewLine(hingeColor)
		line.StrokeWidth = 2
		line.Position1 = fyne.NewPos(h.Bounds.Left*scale, h.Bounds.Top*scale)
		line.Position2 = fyne.NewPos(h.Bounds.Right*scale, h.Bounds.Bottom*scale)
		r.objects = append(r.objects, line)
	}
}

func (r *devicePreviewRenderer) Layout(size fyne.Size)        {}
func (r *devicePreviewRenderer) Refresh()                     { r.rebuild() }
func (r *devicePreviewRenderer) Destroy()                     {}
func (r *devicePreviewRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *devicePreviewRenderer) MinSize() fyne.Size {
	scale := r.dp.scale()
	if scale == 0 {
		return fyne.NewSize(r.dp.maxWidth, 20)
	}
	// Leave room for the size caption under the outline.
	return fyne.NewSize(float32(r.dp.widthDp)*scale, float32(r.dp.heightDp)*scale+14)
}
