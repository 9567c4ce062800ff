/* Command sally: a line oriented stack language interpreter

Sally Forth reads programs a line at a time. Lines are scanned into tokens
until a blank line (or the end of input) is reached, and then the scanned
tokens are evaluated in order:

	- integers, like 42 or -7, are pushed onto the parameter stack
	- string literals, written ."like this", are pushed as well
	- // comments out the rest of a line
	- built-in words, like + or DUP, operate on the stack
	- names of variables are pushed as variable references
	- any other word is pushed as is, so that it may name a new variable

Built-in words:

	+ - * / % NEG          integer arithmetic
	. SP CR                print the top token, a space, or a line break
	DUP DROP SWAP ROT      stack manipulation
	== != < <= > >=        comparison, resulting in 1 or 0
	AND OR NOT             logic, treating any non-zero value as true
	SET @ !                define, fetch, and store variables
	IFTHEN ELSE ENDIF      conditionals
	DO UNTIL               loops
	DUMP                   dump interpreter state to stderr

Variables are defined once with SET, and updated with !:

	10 x SET
	x @ 1 + x !
	x @ . CR

There is no parse tree: a false IFTHEN skips ahead over tokens to its ELSE or
ENDIF, and DO records the tokens that follow it so that UNTIL can replay them:

	3 DO DUP . CR 1 - DUP 0 == UNTIL DROP

Once input runs out, the interpreter reports how many tokens are left on the
stack. Running out of stack, or any other failure, stops the program.

Usage:

	sally [-trace] [-timeout DURATION] [-stack-limit N] [FILE...]

Files are read in order; without any, standard input is read, with an
interactive prompt when it is a terminal.
*/
package main
