package machine

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/opcode"
)

// execute applies ins to the machine state and advances PC. Every check
// that can fail runs before the first write so a failing instruction
// leaves the state untouched.
func (m *Machine) execute(ins opcode.Instruction) error {
	switch in := ins.(type) {
	case opcode.Sys:
		m.next()
	case opcode.Cls:
		m.display.clear()
		m.next()
	case opcode.Ret:
		addr, err := m.stack.pop()
		if err != nil {
			return err
		}
		m.pc = addr
	case opcode.Jump:
		m.pc = uint16(in.Addr)
	case opcode.Call:
		if err := m.stack.push(m.pc + opcode.Size); err != nil {
			return err
		}
		m.pc = uint16(in.Addr)
	case opcode.JumpOffset:
		m.pc = uint16(in.Addr) + uint16(m.v[0])

	case opcode.SkipEqualImm:
		m.skipIf(m.v[in.X] == in.Value)
	case opcode.SkipNotEqualImm:
		m.skipIf(m.v[in.X] != in.Value)
	case opcode.SkipEqualReg:
		m.skipIf(m.v[in.X] == m.v[in.Y])
	case opcode.SkipNotEqualReg:
		m.skipIf(m.v[in.X] != m.v[in.Y])
	case opcode.SkipKeyPressed:
		m.skipIf(m.keypad.Pressed(m.v[in.X]))
	case opcode.SkipKeyNotPressed:
		m.skipIf(!m.keypad.Pressed(m.v[in.X]))

	case opcode.LoadImm:
		m.v[in.X] = in.Value
		m.next()
	case opcode.AddImm:
		m.v[in.X] += in.Value
		m.next()
	case opcode.LoadReg, opcode.Or, opcode.And, opcode.Xor, opcode.AddReg,
		opcode.Sub, opcode.SubReverse, opcode.ShiftRight, opcode.ShiftLeft:
		m.executeALU(in)
		m.next()
	case opcode.Random:
		m.v[in.X] = m.random.Byte() & in.Mask
		m.next()

	case opcode.LoadIndex:
		m.i = uint16(in.Addr)
		m.next()
	case opcode.AddIndex:
		m.i += uint16(m.v[in.X])
		m.next()
	case opcode.LoadFont:
		m.i = FontStart + uint16(m.v[in.X]&0xF)*GlyphSize
		m.next()
	case opcode.Draw:
		return m.draw(in)

	case opcode.LoadDelay:
		m.v[in.X] = m.timers.Delay
		m.next()
	case opcode.SetDelay:
		m.timers.Delay = m.v[in.X]
		m.next()
	case opcode.SetSound:
		m.timers.Sound = m.v[in.X]
		m.next()
	case opcode.WaitKey:
		m.waitKey(in.X)

	case opcode.StoreBCD:
		dst, err := m.memory.region(m.i, 3)
		if err != nil {
			return err
		}
		value := m.v[in.X]
		dst[0] = value / 100
		dst[1] = value / 10 % 10
		dst[2] = value % 10
		m.next()
	case opcode.StoreRegisters:
		dst, err := m.memory.region(m.i, int(in.X)+1)
		if err != nil {
			return err
		}
		copy(dst, m.v[:in.X+1])
		m.next()
	case opcode.LoadRegisters:
		src, err := m.memory.region(m.i, int(in.X)+1)
		if err != nil {
			return err
		}
		copy(m.v[:in.X+1], src)
		m.next()

	default:
		return fmt.Errorf("unsupported instruction %T", ins)
	}
	return nil
}

// executeALU runs the 8xyN register operations. Operands are read before
// the destination is written and the VF flag is always written last, so
// VF used as an operand or destination ends up holding the flag.
func (m *Machine) executeALU(ins opcode.Instruction) {
	var (
		x       opcode.Register
		result  byte
		flag    byte
		hasFlag = true
	)

	switch in := ins.(type) {
	case opcode.LoadReg:
		x, result, hasFlag = in.X, m.v[in.Y], false
	case opcode.Or:
		x, result, hasFlag = in.X, m.v[in.X]|m.v[in.Y], false
	case opcode.And:
		x, result, hasFlag = in.X, m.v[in.X]&m.v[in.Y], false
	case opcode.Xor:
		x, result, hasFlag = in.X, m.v[in.X]^m.v[in.Y], false
	case opcode.AddReg:
		sum := uint16(m.v[in.X]) + uint16(m.v[in.Y])
		x, result, flag = in.X, byte(sum), boolToByte(sum > 0xFF)
	case opcode.Sub:
		vx, vy := m.v[in.X], m.v[in.Y]
		x, result, flag = in.X, vx-vy, boolToByte(vx >= vy)
	case opcode.SubReverse:
		vx, vy := m.v[in.X], m.v[in.Y]
		x, result, flag = in.X, vy-vx, boolToByte(vy >= vx)
	case opcode.ShiftRight:
		vx := m.v[in.X]
		x, result, flag = in.X, vx>>1, vx&0x01
	case opcode.ShiftLeft:
		vx := m.v[in.X]
		x, result, flag = in.X, vx<<1, vx>>7
	}

	m.v[x] = result
	if hasFlag {
		m.v[opcode.VF] = flag
	}
}

// draw XORs an n byte sprite read from I onto the display.
func (m *Machine) draw(in opcode.Draw) error {
	sprite, err := m.memory.region(m.i, int(in.Rows))
	if err != nil {
		return err
	}
	collision := m.display.draw(m.v[in.X], m.v[in.Y], sprite)
	m.v[opcode.VF] = boolToByte(collision)
	m.next()
	return nil
}

// waitKey implements LD Vx, K. The first execution discards all key
// presses seen so far, following executions consume the next key press.
// PC only advances once a key was stored.
func (m *Machine) waitKey(x opcode.Register) {
	if !m.wait.AwaitingKey {
		m.keypad.clearLatch()
		m.wait = Status{AwaitingKey: true, Register: x}
		return
	}

	key, ok := m.keypad.takeLatched()
	if !ok {
		return
	}
	m.v[x] = key
	m.wait = Status{}
	m.next()
}

func (m *Machine) next() {
	m.pc += opcode.Size
}

func (m *Machine) skipIf(condition bool) {
	if condition {
		m.pc += 2 * opcode.Size
		return
	}
	m.pc += opcode.Size
}

func boolToByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
