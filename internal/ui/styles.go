package ui

import (
	"github.com/kpumuk/lazyplot/internal/ui/charts"
	"github.com/kpumuk/lazyplot/internal/ui/components/footer"
	"github.com/kpumuk/lazyplot/internal/ui/components/frame"
	"github.com/kpumuk/lazyplot/internal/ui/components/jsonview"
	"github.com/kpumuk/lazyplot/internal/ui/components/scrollbar"
	"github.com/kpumuk/lazyplot/internal/ui/components/statusbar"
	"github.com/kpumuk/lazyplot/internal/ui/components/toast"
	"github.com/kpumuk/lazyplot/internal/ui/dialogs/dataentry"
	"github.com/kpumuk/lazyplot/internal/ui/dialogs/devtools"
	"github.com/kpumuk/lazyplot/internal/ui/dialogs/filter"
	"github.com/kpumuk/lazyplot/internal/ui/dialogs/help"
	"github.com/kpumuk/lazyplot/internal/ui/dialogs/importer"
	"github.com/kpumuk/lazyplot/internal/ui/dialogs/inspect"
	"github.com/kpumuk/lazyplot/internal/ui/dialogs/style"
	"github.com/kpumuk/lazyplot/internal/ui/theme"
)

func statusbarStyles(s theme.Styles) statusbar.Styles {
	return statusbar.Styles{
		Bar:       s.StatusBar,
		Label:     s.StatusLabel,
		Value:     s.StatusValue,
		Separator: s.StatusSep,
	}
}

func footerStyles(s theme.Styles) footer.Styles {
	return footer.Styles{
		Bar:  s.FooterBar,
		Key:  s.FooterKey,
		Item: s.FooterItem,
	}
}

func toastStyles(s theme.Styles) toast.Styles {
	return toast.Styles{
		Text:    s.ViewText,
		Info:    s.ToastInfo,
		Success: s.ToastSuccess,
		Warning: s.ToastWarning,
		Error:   s.ToastError,
	}
}

func panelStyles(s theme.Styles) frame.Styles {
	return frame.Styles{
		Focused: frame.StyleState{Title: s.ViewTitle, Muted: s.ViewMuted, Border: s.FocusBorder},
		Blurred: frame.StyleState{Title: s.ViewText, Muted: s.ViewMuted, Border: s.BorderStyle},
	}
}

func rasterStyles(s theme.Styles) charts.Styles {
	return charts.Styles{
		Axis:  s.ChartAxis,
		Label: s.ChartLabel,
		Muted: s.ViewMuted,
		Text:  s.ViewText,
	}
}

func jsonStyles(s theme.Styles) jsonview.Styles {
	return jsonview.Styles{
		Text:        s.ViewText,
		Key:         s.JSONKey,
		String:      s.JSONString,
		Number:      s.JSONNumber,
		Bool:        s.JSONBool,
		Null:        s.JSONNull,
		Punctuation: s.ViewMuted,
		Muted:       s.ViewMuted,
	}
}

func scrollbarStyles(s theme.Styles) scrollbar.Styles {
	return scrollbar.Styles{
		Track: s.BorderStyle,
		Thumb: s.FocusBorder,
	}
}

func filterStyles(s theme.Styles) filter.Styles {
	return filter.Styles{
		Title:       s.ViewTitle,
		Border:      s.FocusBorder,
		Prompt:      s.ViewTitle,
		Text:        s.ViewText,
		Muted:       s.ViewMuted,
		Placeholder: s.ViewMuted,
		Selected:    s.TableSelected,
	}
}

func helpStyles(s theme.Styles) help.Styles {
	return help.Styles{
		Title:     s.ViewTitle,
		Border:    s.FocusBorder,
		Section:   s.TableHeader,
		Key:       s.ViewTitle,
		Desc:      s.ViewText,
		Muted:     s.ViewMuted,
		Scrollbar: scrollbarStyles(s),
	}
}

func devtoolsStyles(s theme.Styles) devtools.Styles {
	return devtools.Styles{
		Title:          s.ViewTitle,
		Border:         s.FocusBorder,
		Text:           s.ViewText,
		Muted:          s.ViewMuted,
		Prompt:         s.ViewTitle,
		Placeholder:    s.ViewMuted,
		TableHeader:    s.TableHeader,
		TableSelected:  s.TableSelected,
		TableSeparator: s.TableSeparator,
	}
}

func dataentryStyles(s theme.Styles) dataentry.Styles {
	return dataentry.Styles{
		Title:       s.ViewTitle,
		Border:      s.FocusBorder,
		Prompt:      s.ViewTitle,
		Text:        s.ViewText,
		Muted:       s.ViewMuted,
		Placeholder: s.ViewMuted,
		Error:       s.ToastError,
		JSON:        jsonStyles(s),
	}
}

func styleFormStyles(s theme.Styles) style.Styles {
	return style.Styles{
		Title:       s.ViewTitle,
		Border:      s.FocusBorder,
		Label:       s.ViewMuted,
		Text:        s.ViewText,
		Muted:       s.ViewMuted,
		Placeholder: s.ViewMuted,
		Selected:    s.TableSelected,
		Error:       s.ToastError,
		Button:      s.Button,
		ButtonFocus: s.ButtonFocus,
	}
}

func importerStyles(s theme.Styles) importer.Styles {
	return importer.Styles{
		Title:          s.ViewTitle,
		Border:         s.FocusBorder,
		Prompt:         s.ViewTitle,
		Text:           s.ViewText,
		Muted:          s.ViewMuted,
		Placeholder:    s.ViewMuted,
		Error:          s.ToastError,
		TableHeader:    s.TableHeader,
		TableSelected:  s.TableSelected,
		TableSeparator: s.TableSeparator,
	}
}

func inspectStyles(s theme.Styles) inspect.Styles {
	return inspect.Styles{
		Title:     s.ViewTitle,
		Border:    s.FocusBorder,
		Muted:     s.ViewMuted,
		JSON:      jsonStyles(s),
		Scrollbar: scrollbarStyles(s),
	}
}
