package ui

import (
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"email_reply_generator/generator"
)

// MainWindow owns the presentation state: the two text regions, the tone
// selector, the action controls and the status line. Widgets are only ever
// mutated from the UI-owning context; background results re-enter it
// through fyne.Do in the results consumer.
type MainWindow struct {
	win  fyne.Window
	orch *generator.Orchestrator
	log  *zap.Logger

	input       *widget.Entry
	output      *widget.Entry
	toneSelect  *widget.Select
	generateBtn *widget.Button
	status      *widget.Label
}

func New(a fyne.App, orch *generator.Orchestrator, log *zap.Logger) *MainWindow {
	if log == nil {
		log = zap.NewNop()
	}
	m := &MainWindow{
		win:  a.NewWindow("Email Reply Generator"),
		orch: orch,
		log:  log,
	}

	m.input = widget.NewMultiLineEntry()
	m.input.SetPlaceHolder("Enter the email you want to reply to here...")
	m.input.Wrapping = fyne.TextWrapWord

	tones := generator.Tones()
	options := make([]string, len(tones))
	for i, t := range tones {
		options[i] = t.String()
	}
	m.toneSelect = widget.NewSelect(options, nil)
	m.toneSelect.SetSelected(generator.DefaultTone().String())

	m.output = widget.NewMultiLineEntry()
	m.output.Wrapping = fyne.TextWrapWord
	m.output.Disable()

	m.generateBtn = widget.NewButton("Generate Reply", m.onGenerate)
	clearBtn := widget.NewButton("Clear", m.clearFields)
	copyBtn := widget.NewButton("Copy to Clipboard", m.copyOutput)

	m.status = widget.NewLabel("")

	toneRow := container.NewHBox(widget.NewLabel("Reply Tone:"), m.toneSelect)
	buttons := container.NewHBox(m.generateBtn, clearBtn, layout.NewSpacer(), copyBtn)
	split := container.NewVSplit(
		container.NewBorder(widget.NewLabel("Original Email"), toneRow, nil, nil, m.input),
		container.NewBorder(widget.NewLabel("Generated Reply"), nil, nil, nil, m.output),
	)
	bottom := container.NewVBox(buttons, m.status)
	m.win.SetContent(container.NewBorder(nil, bottom, nil, nil, split))
	m.win.Resize(fyne.NewSize(800, 600))

	m.renderIdle()
	go m.consumeResults()

	return m
}

func (m *MainWindow) ShowAndRun() {
	m.win.ShowAndRun()
}

// consumeResults is the sole consumer of the orchestrator's hand-off
// channel. It never touches widgets directly; each result is rendered on
// the UI-owning context.
func (m *MainWindow) consumeResults() {
	for res := range m.orch.Results() {
		fyne.Do(func() {
			if res.Err != nil {
				m.renderError(res.Err.Error())
			} else {
				m.renderResult(res.Text)
			}
		})
	}
}

func (m *MainWindow) onGenerate() {
	tone := generator.Tone(m.toneSelect.Selected)
	err := m.orch.Request(m.input.Text, tone)
	if errors.Is(err, generator.ErrBusy) {
		// The control is disabled while a request is in flight; a second
		// trigger is a no-op.
		return
	}
	if err != nil {
		m.log.Debug("request rejected", zap.Error(err))
		m.renderError(err.Error())
		return
	}
	m.renderBusy()
}

func (m *MainWindow) renderIdle() {
	m.generateBtn.Enable()
	m.status.SetText("Ready")
}

func (m *MainWindow) renderBusy() {
	m.generateBtn.Disable()
	m.status.SetText("Generating reply...")
}

func (m *MainWindow) renderResult(text string) {
	m.output.SetText(text)
	m.generateBtn.Enable()
	m.status.SetText("Reply generated successfully")
}

func (m *MainWindow) renderError(msg string) {
	m.generateBtn.Enable()
	m.status.SetText("Error: " + msg)
}

func (m *MainWindow) clearFields() {
	m.input.SetText("")
	m.output.SetText("")
	m.status.SetText("Fields cleared")
}

func (m *MainWindow) copyOutput() {
	m.win.Clipboard().SetContent(m.output.Text)
	m.status.SetText("Copied to clipboard")
}
