package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

const DUMP_HEADER = "Atom Info, Orbital, Populations"

// WriteDump writes records to w in the debug dump format, one line per
// record after a header line
func WriteDump(w io.Writer, records []Record) error {
	nw := bufio.NewWriter(w)
	fmt.Fprintln(nw, DUMP_HEADER)
	for _, r := range records {
		fmt.Fprintln(nw, r.String())
	}
	return nw.Flush()
}

// DumpRecords writes records to filename with WriteDump
func DumpRecords(records []Record, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := WriteDump(f, records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
