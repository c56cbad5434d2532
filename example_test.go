package lineprotocol_test

import (
	"fmt"

	"github.com/tsflow/lineprotocol"
)

func ExampleDecode() {
	p, err := lineprotocol.Decode([]byte("weather,location=us-midwest temperature=82 1465839830100400200"))
	if err != nil {
		panic(err)
	}
	fmt.Println(p.Measurement)
	fmt.Println(p.Tags["location"])
	fmt.Println(p.Fields["temperature"].FloatV())
	fmt.Println(p.Timestamp)
	// Output:
	// weather
	// us-midwest
	// 82
	// 1465839830100400200
}

func ExampleEncode() {
	p := &lineprotocol.Point{
		Measurement: "weather",
		Tags:        map[string]string{"location": "us-midwest"},
		Fields: map[string]lineprotocol.Value{
			"temperature": lineprotocol.MustNewValue(82.5),
			"too_hot":     lineprotocol.MustNewValue(false),
		},
		Timestamp: 1465839830100400200,
	}
	data, err := lineprotocol.Encode(p)
	if err != nil {
		panic(err)
	}
	fmt.Println(string(data))
	// Output:
	// weather,location=us-midwest temperature=82.5 too_hot=false 1465839830100400200
}
