package audio

import (
	"sync"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/void-siege/core"
)

// soundCache stores pre-rendered unity-gain buffers
type soundCache struct {
	mu     sync.RWMutex
	format beep.Format
	store  [core.SoundTypeCount]*beep.Buffer
}

func newSoundCache(rate beep.SampleRate) *soundCache {
	return &soundCache{
		format: beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2},
	}
}

// get returns a fresh streamer over the cached buffer, rendering on first use
func (c *soundCache) get(st core.SoundType) beep.StreamSeeker {
	if st < 0 || st >= core.SoundTypeCount {
		return nil
	}

	c.mu.RLock()
	buf := c.store[st]
	c.mu.RUnlock()

	if buf == nil {
		c.mu.Lock()
		// Double-check after acquiring write lock
		if buf = c.store[st]; buf == nil {
			s := synthesize(st, c.format.SampleRate)
			if s == nil {
				c.mu.Unlock()
				return nil
			}
			buf = beep.NewBuffer(c.format)
			buf.Append(s)
			c.store[st] = buf
		}
		c.mu.Unlock()
	}

	return buf.Streamer(0, buf.Len())
}

// preload renders every sound so the first trigger does not stall the speaker
func (c *soundCache) preload() {
	for st := core.SoundType(0); st < core.SoundTypeCount; st++ {
		c.get(st)
	}
}
