package main

import (
	"errors"
	"fmt"

	"github.com/saylorsolutions/xorimg/pkg/transform"
	"github.com/saylorsolutions/xorimg/pkg/xor"
)

var (
	errUsage = errors.New("wrong number of arguments, see --help")
)

type oneShot struct {
	direction transform.Direction
	key       xor.Key
	file      string
	generated bool
}

func parseArgs(args []string, randomKey bool) (oneShot, error) {
	var job oneShot
	if randomKey {
		if len(args) != 2 {
			return job, fmt.Errorf("%w: expected ACTION FILE with --random-key", errUsage)
		}
	} else if len(args) != 3 {
		return job, fmt.Errorf("%w: expected ACTION KEY FILE", errUsage)
	}

	dir, err := transform.ParseDirection(args[0])
	if err != nil {
		return job, err
	}
	job.direction = dir
	job.file = args[len(args)-1]

	if randomKey {
		if dir != transform.Encrypt {
			return job, errors.New("--random-key can only be used to encrypt")
		}
		job.key, err = xor.GenKey()
		if err != nil {
			return job, err
		}
		job.generated = true
		return job, nil
	}
	job.key, err = xor.ParseKey(args[1])
	if err != nil {
		return job, err
	}
	return job, nil
}

func (j oneShot) request(mode transform.Mode, output string) transform.Request {
	return transform.Request{
		Mode:      mode,
		Direction: j.direction,
		Key:       j.key,
		Source:    j.file,
		Output:    output,
	}
}
