package hologram

import "log"

// Scheduler owns every live Clip, keyed by control id then property.
// Controls attached to a panel use their panel-qualified AnimationKey as
// the id. There is at most one clip per (control, property) channel. It is not safe for
// concurrent use: add, sample, cancel and tick all run on the tick thread.
type Scheduler struct {
	clock    Clock
	logger   *log.Logger
	channels map[string]map[string]*Clip
	done     []finishedClip
}

type finishedClip struct {
	controlID string
	clip      *Clip
}

// NewScheduler creates a scheduler reading time from clock. A nil clock
// uses the system clock; a nil logger logs to stderr.
func NewScheduler(clock Clock, logger *log.Logger) *Scheduler {
	if clock == nil {
		clock = SystemClock{}
	}
	if logger == nil {
		logger = defaultLogger()
	}
	return &Scheduler{
		clock:    clock,
		logger:   logger,
		channels: make(map[string]map[string]*Clip),
	}
}

// Add starts clip on the (controlID, clip.Property) channel, cancelling any
// clip already playing there.
func (s *Scheduler) Add(controlID string, clip *Clip) {
	if clip == nil {
		return
	}
	ch := s.channels[controlID]
	if ch == nil {
		ch = make(map[string]*Clip)
		s.channels[controlID] = ch
	}
	if prev := ch[clip.Property]; prev != nil && prev != clip {
		prev.Cancel()
	}
	ch[clip.Property] = clip
	clip.begin(s.clock.Now())
}

// Sample returns the current value of a channel, or def when nothing is
// playing on it. Finished and cancelled clips are removed as a side effect;
// a clip that finishes here fires its completion callback.
func (s *Scheduler) Sample(controlID, property string, def float64) float64 {
	clip := s.channels[controlID][property]
	if clip == nil {
		return def
	}
	if clip.cancelled {
		s.remove(controlID, property, clip)
		return def
	}
	p, delayed := clip.progress(s.clock.Now())
	if delayed {
		return clip.From
	}
	if p >= 1 {
		s.remove(controlID, property, clip)
		s.complete(controlID, clip)
		return clip.To
	}
	return clip.valueAt(p)
}

// Has reports whether a live clip plays on the channel.
func (s *Scheduler) Has(controlID, property string) bool {
	clip := s.channels[controlID][property]
	return clip != nil && !clip.Done()
}

// Cancel marks clips of controlID cancelled. With no properties every
// channel of the control is cancelled. Entries are released by the next
// Sample or Tick.
func (s *Scheduler) Cancel(controlID string, properties ...string) {
	ch := s.channels[controlID]
	if ch == nil {
		return
	}
	if len(properties) == 0 {
		for _, clip := range ch {
			clip.Cancel()
		}
		return
	}
	for _, p := range properties {
		if clip := ch[p]; clip != nil {
			clip.Cancel()
		}
	}
}

// Tick advances every clip once, pruning cancelled ones and completing
// those past their end so idle controls release their entries.
func (s *Scheduler) Tick() {
	now := s.clock.Now()
	s.done = s.done[:0]
	for id, ch := range s.channels {
		for prop, clip := range ch {
			if clip.cancelled {
				delete(ch, prop)
				continue
			}
			if p, delayed := clip.progress(now); !delayed && p >= 1 {
				delete(ch, prop)
				s.done = append(s.done, finishedClip{controlID: id, clip: clip})
			}
		}
		if len(ch) == 0 {
			delete(s.channels, id)
		}
	}
	// Callbacks run after the sweep so they may add clips freely.
	for i := range s.done {
		s.complete(s.done[i].controlID, s.done[i].clip)
		s.done[i] = finishedClip{}
	}
}

// Len returns the number of stored clips, including cancelled ones not yet
// pruned.
func (s *Scheduler) Len() int {
	n := 0
	for _, ch := range s.channels {
		n += len(ch)
	}
	return n
}

// Clear cancels and drops every clip.
func (s *Scheduler) Clear() {
	for id, ch := range s.channels {
		for _, clip := range ch {
			clip.Cancel()
		}
		delete(s.channels, id)
	}
}

func (s *Scheduler) remove(controlID, property string, clip *Clip) {
	ch := s.channels[controlID]
	if ch[property] != clip {
		return
	}
	delete(ch, property)
	if len(ch) == 0 {
		delete(s.channels, controlID)
	}
}

func (s *Scheduler) complete(controlID string, clip *Clip) {
	if clip.completed || clip.cancelled {
		return
	}
	clip.completed = true
	if clip.OnComplete != nil {
		safeCall(s.logger, "clip "+controlID+"/"+clip.Property+" completion", clip.OnComplete)
	}
}
