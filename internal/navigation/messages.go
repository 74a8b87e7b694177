package navigation

// FadeOutElapsedMsg ends the fade-out window of transition Seq.
type FadeOutElapsedMsg struct {
	Seq uint64
}

// FadeInElapsedMsg ends the fade-in window of transition Seq.
type FadeInElapsedMsg struct {
	Seq uint64
}

// ModalClearMsg releases the selected project after a close.
type ModalClearMsg struct {
	Seq uint64
}
