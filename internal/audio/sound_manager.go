// internal/audio/sound_manager.go
package audio

import (
	"math/rand"
	"sync"
	"time"

	"go-fireworks/internal/event"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"
)

const (
	// maxVoices ограничивает число одновременно звучащих хлопков:
	// залп кольца даёт двадцать разрывов почти в одном кадре.
	maxVoices    = 12
	burstVolume  = 0.35
	bufferLength = 100 * time.Millisecond
)

var _ event.Listener = (*SoundManager)(nil)

// SoundManager озвучивает разрывы снарядов. Без инициализации все вызовы
// молча ничего не делают, так что симуляция работает и без звуковой карты.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rng         *rand.Rand
	width       float64
	initialized bool
	logger      zerolog.Logger
}

// NewSoundManager создаёт менеджер для холста шириной width (нужна для панорамы).
func NewSoundManager(width float64, seed int64, logger zerolog.Logger) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		rng:    rand.New(rand.NewSource(seed)),
		width:  width,
		logger: logger.With().Str("component", "audio").Logger(),
	}
}

// Initialize открывает устройство вывода и запускает микшер.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(bufferLength)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.logger.Debug().Int("sampleRate", int(sampleRate)).Msg("audio initialized")
	return nil
}

// Cleanup останавливает все звуки и закрывает устройство.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// PlayBurst проигрывает хлопок; x задаёт положение в стереопанораме.
func (sm *SoundManager) PlayBurst(x float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	pan := 0.0
	if sm.width > 0 {
		pan = x/sm.width*2 - 1
	}
	streamer := CreateBurstSound(sm.rng, pan*0.8, burstVolume)

	speaker.Lock()
	defer speaker.Unlock()
	if sm.mixer.Len() >= maxVoices {
		return
	}
	sm.mixer.Add(streamer)
}

// OnEvent реагирует на разрывы снарядов.
func (sm *SoundManager) OnEvent(e event.Event) {
	if e.Type != event.ShellBurst {
		return
	}
	if b, ok := e.Data.(event.Burst); ok {
		sm.PlayBurst(b.X)
	}
}

// Attach подписывает менеджер на разрывы. Ошибка инициализации не фатальна:
// она пишется в лог, и симуляция продолжается без звука.
func Attach(d *event.Dispatcher, width float64, seed int64, logger zerolog.Logger) *SoundManager {
	sm := NewSoundManager(width, seed, logger)
	if err := sm.Initialize(); err != nil {
		sm.logger.Warn().Err(err).Msg("audio unavailable, running silent")
		return sm
	}
	d.Subscribe(event.ShellBurst, sm)
	return sm
}
