// This file is part of GopherSMS.
//
// GopherSMS is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherSMS is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherSMS.  If not, see <https://www.gnu.org/licenses/>.

package ports

import (
	"fmt"
	"strings"
)

// Joypad is the state of one controller. A true value means pressed.
type Joypad struct {
	Up      bool
	Down    bool
	Left    bool
	Right   bool
	Button1 bool
	Button2 bool
}

func (j Joypad) String() string {
	s := strings.Builder{}
	for _, b := range []struct {
		pressed bool
		label   string
	}{
		{j.Up, "U"}, {j.Down, "D"}, {j.Left, "L"}, {j.Right, "R"}, {j.Button1, "1"}, {j.Button2, "2"},
	} {
		if b.pressed {
			s.WriteString(b.label)
		} else {
			s.WriteString("-")
		}
	}
	return s.String()
}

// Input is the state of all the inputs to the console. The input is supplied
// by the frontend once per frame.
type Input struct {
	Player [2]Joypad
	Reset  bool
	Pause  bool
}

func (in Input) String() string {
	return fmt.Sprintf("P1=%s P2=%s reset=%v pause=%v", in.Player[0], in.Player[1], in.Reset, in.Pause)
}

// Pack the input into a 16 bit value. Bits 0 to 5 are player one (up, down,
// left, right, button 1, button 2), bits 6 to 11 are player two, bit 12 is
// reset and bit 13 is pause.
func (in Input) Pack() uint16 {
	var v uint16
	for p, j := range in.Player {
		for i, b := range []bool{j.Up, j.Down, j.Left, j.Right, j.Button1, j.Button2} {
			if b {
				v |= 1 << (p*6 + i)
			}
		}
	}
	if in.Reset {
		v |= 1 << 12
	}
	if in.Pause {
		v |= 1 << 13
	}
	return v
}

// UnpackInput is the inverse of Input.Pack().
func UnpackInput(v uint16) Input {
	var in Input
	for p := range in.Player {
		j := &in.Player[p]
		for i, b := range []*bool{&j.Up, &j.Down, &j.Left, &j.Right, &j.Button1, &j.Button2} {
			*b = v&(1<<(p*6+i)) != 0
		}
	}
	in.Reset = v&(1<<12) != 0
	in.Pause = v&(1<<13) != 0
	return in
}
