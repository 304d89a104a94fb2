package bhasha

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/openlexica/bhasha/language"
)

// TranslateForChat renders one message for both ends of a conversation.
// The input is anchored in English first; the sender's preview and the
// receiver's delivery are then derived independently from that English
// core. The receiver view never passes through the sender's language, so
// translation error cannot compound across two hops.
func (e *Engine) TranslateForChat(ctx context.Context, text, senderLang, receiverLang string) (*ChatMessageViews, error) {
	sender := e.registry.Normalize(senderLang)
	receiver := e.registry.Normalize(receiverLang)

	views := &ChatMessageViews{
		Path: chatPath(e.registry, sender, receiver),
	}
	if strings.TrimSpace(text) == "" {
		return views, nil
	}

	// English core. Latin-ASCII input is already anchored: romanized chat
	// passes through verbatim rather than round-tripping the reverse
	// dictionary, which would mangle words it does not know.
	if e.registry.IsEnglish(sender) || latinASCII(text) {
		views.EnglishCore = text
	} else {
		core, err := e.Translate(ctx, text, sender, "english")
		if err != nil {
			return nil, err
		}
		views.EnglishCore = core.Text
		views.Translated = core.IsTranslated
	}

	// Sender's own preview.
	if e.registry.IsEnglish(sender) {
		views.SenderView = text
	} else {
		views.SenderView = text
		if !e.registry.IsLatinScript(sender) && language.IsLatinText(text) && e.translit.HasScheme(sender) {
			views.SenderView = e.translit.ToNative(text, sender)
			views.Transliterated = true
		}
	}

	// Receiver's delivery, always from the English core.
	if e.registry.IsEnglish(receiver) {
		views.ReceiverView = views.EnglishCore
	} else {
		out, err := e.Translate(ctx, views.EnglishCore, "english", receiver)
		if err != nil {
			return nil, err
		}
		views.ReceiverView = out.Text
		views.Translated = views.Translated || out.IsTranslated
	}

	return views, nil
}

// chatPath classifies both sides as english, latin or native and tags the
// combination.
func chatPath(r *language.Registry, sender, receiver string) TranslationPath {
	return TranslationPath(sideClass(r, sender) + "-to-" + sideClass(r, receiver))
}

func sideClass(r *language.Registry, lang string) string {
	switch {
	case r.IsEnglish(lang):
		return "english"
	case r.IsLatinScript(lang):
		return "latin"
	default:
		return "native"
	}
}

// latinASCII reports whether the text is plain ASCII.
func latinASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
