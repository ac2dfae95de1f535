package disasm

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/retroenv/retrochip8/internal/machine"
)

const (
	bytesPerDataLine = 8
	commentColumn    = 32
	indent           = "    "
)

// write writes the listing. Errors are kept by the buffered writer and
// returned by its Flush.
func (dis *Disasm) write(buf *bufio.Writer) {
	_, _ = buf.WriteString("; CHIP-8 ROM Disassembly\n")
	_, _ = fmt.Fprintf(buf, "; Program size: %d bytes\n\n", len(dis.data))
	_, _ = fmt.Fprintf(buf, ".org $%03X\n\n", machine.ProgramStart)

	for index := 0; index < len(dis.offsets); {
		off := dis.offsets[index]
		if off.label != "" {
			_, _ = fmt.Fprintf(buf, "%s:\n", off.label)
		}

		if off.kind == codeOffset {
			dis.writeCode(buf, index)
			index += 2
			continue
		}

		end := dis.dataEnd(index)
		dis.writeData(buf, index, end)
		index = end
	}
}

// dataEnd returns the end of the data line starting at index. A line ends
// at code, at a label or after bytesPerDataLine bytes.
func (dis *Disasm) dataEnd(index int) int {
	end := index + 1
	for end < len(dis.offsets) && end-index < bytesPerDataLine {
		off := dis.offsets[end]
		if off.kind == codeOffset || off.label != "" {
			break
		}
		end++
	}
	return end
}

func (dis *Disasm) writeCode(buf *bufio.Writer, index int) {
	line := indent + dis.offsets[index].instruction.String()

	var comment []string
	if dis.options.OffsetComments {
		comment = append(comment, address(index))
	}
	if dis.options.HexComments {
		comment = append(comment, fmt.Sprintf("%02X %02X", dis.data[index], dis.data[index+1]))
	}
	writeLine(buf, line, comment)
}

func (dis *Disasm) writeData(buf *bufio.Writer, start, end int) {
	var line strings.Builder
	line.WriteString(indent)
	line.WriteString(".byte ")
	for i, b := range dis.data[start:end] {
		if i > 0 {
			line.WriteString(", ")
		}
		fmt.Fprintf(&line, "$%02X", b)
	}

	var comment []string
	if dis.options.OffsetComments {
		comment = append(comment, address(start))
	}
	writeLine(buf, line.String(), comment)
}

func writeLine(buf *bufio.Writer, line string, comment []string) {
	if len(comment) == 0 {
		_, _ = fmt.Fprintf(buf, "%s\n", line)
		return
	}
	_, _ = fmt.Fprintf(buf, "%-*s ; %s\n", commentColumn, line, strings.Join(comment, " "))
}

func address(index int) string {
	return fmt.Sprintf("$%03X", machine.ProgramStart+index)
}
