package host

import "image"

// Token is a placed, visual instance of an actor on the scene canvas.
// SetTexture swaps the drawn resource in place without re-rendering the
// token.
type Token interface {
	ActorID() string
	SetTexture(img image.Image)
}

// Element is a handle to an already-rendered UI fragment. SetImageAttr
// swaps the source attribute of the image matched by selector; it is a
// purely presentational mutation and never touches any document model.
type Element interface {
	SetImageAttr(selector, path string)
}

// ChatMessage is the underlying chat document. The chat pipeline renders
// the speaker image from the document's stored image field, not from the
// rendered markup, so patching chat requires a document-field mutation
// rather than a presentational one.
type ChatMessage interface {
	ActorID() string
	StoredImage() string
	SetStoredImage(path string)
}

// Combatant is one rendered row in the combat tracker.
type Combatant struct {
	ActorID string
	Element Element
}

// DirectoryEntry is one rendered row in the actor directory.
type DirectoryEntry struct {
	ActorID string
	Element Element
}

// Sheet is a rendered actor sheet.
type Sheet struct {
	ActorID string
	Element Element
}
