package usecase

// SessionCount reports how many dialog sessions are currently open
func (uc *DialogUseCase) SessionCount() int {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return len(uc.sessions)
}
