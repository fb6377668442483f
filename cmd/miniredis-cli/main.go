package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/vector-ops/miniredis/client"
)

// A thin read-eval-print loop: each input line goes to the server verbatim
// and the single response line is printed back.
func main() {
	var addr string
	flag.StringVar(&addr, "addr", "localhost:6379", "Address of the miniredis server")
	flag.Parse()

	c, err := client.New(addr)
	if err != nil {
		log.Fatal(err)
	}
	defer c.Close()

	sc := bufio.NewScanner(os.Stdin)
	for {
		fmt.Printf("%s> ", addr)
		if !sc.Scan() {
			break
		}

		line := sc.Text()
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "":
			continue
		case "exit", "quit":
			return
		}

		resp, err := c.Do(line)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(resp)
	}

	if err := sc.Err(); err != nil {
		log.Fatal(err)
	}
}
