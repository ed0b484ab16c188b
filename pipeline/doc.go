/*
Package pipeline evaluates sequence pipelines written as text, such as

	naturals | filter odd | map * 3 | take 4          => [3 9 15 21]
	values 3 2 1 | digits                            => 123
	range 1 7 | chunk 3 | transpose                  => [[1 4] [2 5] [3 6]]
	values "a" "b" "a" | histogram                   => a:2 b:1

A pipeline is a source, any number of stages and an optional sink, separated by |.
Every step is a word followed by literal arguments: integers, floats, "strings",
true, false, nil, or an operator (+ - * / % < <= > >= == !=).
Right after map a signed number is read as operator and operand, so map -1 is map - 1.

Sources:

	range START END [STEP]   naturals   values V...   repeat V N

Stages:

	map OP N        filter even|odd|OP N    drop N      take N
	slice A [B]     exceptlast N            chunk N     window N
	transpose       sort                    reverse     permutations
	distinct        top N                   bottom N

Sinks:

	sum   product   count   max   first   last   nth N
	histogram       digits [BASE]           join ["SEP"]

Without a sink the elements are collected, up to Options.MaxItems of them.
Integers stay integers under + - * / %; mixing in a float switches to floats.
Comparisons in filter and the ordering of sort and max use seqs.DefaultCompare.
*/
package pipeline
