package pdflzw_test

import (
	"bytes"
	"fmt"
	"os"

	"github.com/arloliu/pdflzw"
)

func ExampleEncode() {
	encoded := pdflzw.Encode([]byte("AAABAAAB"), false)
	fmt.Printf("% x\n", encoded)
	// Output: 80 10 60 44 28 11 04 85 01
}

func ExampleDecode() {
	stream := []byte{0x80, 0x10, 0x60, 0x44, 0x28, 0x11, 0x04, 0x85, 0x01}

	decoded, err := pdflzw.Decode(stream, false)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(string(decoded))
	// Output: AAABAAAB
}

func ExampleDecode_truncated() {
	stream := pdflzw.Encode([]byte("-----A---B"), true)

	// Dropping the tail loses EndOfData and the last codes, not the prefix
	decoded, _ := pdflzw.Decode(stream[:len(stream)-3], true)
	fmt.Println(string(decoded))
	// Output: -----A
}

func ExampleDecodeStream() {
	stream := pdflzw.Encode([]byte("hello, stream\n"), true)

	if _, err := pdflzw.DecodeStream(bytes.NewReader(stream), true, os.Stdout); err != nil {
		fmt.Println(err)
	}
	// Output: hello, stream
}
