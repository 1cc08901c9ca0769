// Command oop runs the value-object demonstrations.
//
// Every demo reproduces one small example program: a value object is constructed
// from its inputs and its report is written to stdout.
//
// # Usage
//
//	oop list                      # print demo names, one per line
//	oop run                       # run every demo in order
//	oop run friend-function       # run selected demos
//	oop run --config inputs.yaml  # replace the default inputs
//	oop version
//
// # Inputs
//
// Without --config the demos use the values of the original programs. A config file
// may replace any section:
//
//	mobile:    { name: OnePlus, model: 11, price: 425000 }
//	car:       { year: 1998, name: Audi, model: A2 }
//	rectangle: { length: 5, breadth: 5 }
//	complex:
//	  left:  { real: 4, img: 1 }
//	  right: { real: 5, img: 42 }
//	counters:  { first: 0, second: 15 }
//
// OOP_* environment variables (OOP_MOBILE_NAME, OOP_CAR_YEAR, OOP_COUNTER_SECOND, ...)
// are applied after the file.
//
// Logs go to stderr and carry a run_id; demo output goes to stdout only.
package main
