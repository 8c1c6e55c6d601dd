package input

import rl "github.com/gen2brain/raylib-go/raylib"

// Keyboard is a raylib-backed Device, polled once per frame by the demo
// binary's game loop (matching the teacher's handleInput poll-every-frame
// idiom in game/input.go).
type Keyboard struct {
	keys     [numButtons]int32
	down     [numButtons]bool
	wasDown  [numButtons]bool
	disabled bool
}

// NewKeyboard returns a Keyboard using the conventional platformer
// layout: arrow keys plus Z for FIRE1.
func NewKeyboard() *Keyboard {
	k := &Keyboard{}
	k.keys[Left] = rl.KeyLeft
	k.keys[Right] = rl.KeyRight
	k.keys[Up] = rl.KeyUp
	k.keys[Down] = rl.KeyDown
	k.keys[Fire1] = rl.KeyZ
	return k
}

// Poll samples raylib's key state for this frame. Call once per tick
// before the actor reads input.
func (k *Keyboard) Poll() {
	k.wasDown = k.down
	if k.disabled {
		for i := range k.down {
			k.down[i] = false
		}
		return
	}
	for b, key := range k.keys {
		if key == 0 {
			continue
		}
		k.down[b] = rl.IsKeyDown(key)
	}
}

func (k *Keyboard) Down(b Button) bool { return k.down[b] }

func (k *Keyboard) Pressed(b Button) bool {
	return k.down[b] && !k.wasDown[b]
}

// SimulateDown/SimulateUp let a caller override a button for one tick
// (e.g. the demo's raygui panel emitting a button press); Poll overwrites
// them again on the next frame unless the mapped key is held.
func (k *Keyboard) SimulateDown(b Button) { k.down[b] = true }
func (k *Keyboard) SimulateUp(b Button)   { k.down[b] = false }

func (k *Keyboard) Reset() {
	for i := range k.down {
		k.down[i] = false
		k.wasDown[i] = false
	}
	k.disabled = false
}

func (k *Keyboard) Disable() { k.disabled = true }
