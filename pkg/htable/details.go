/*
	This hash table implementation uses a closed hashing (open addressing) technique
	for resolving hash collisions. The table has a fixed number of slots, chosen when
	it is created, and it never grows or shrinks. Two probing strategies are supported:
	01) Linear probing: on a collision, move to the next slot (index + 1)
	02) Double hashing: on a collision, move by a step derived from the key's hash
	    (1 + hash % (capacity - 1)). The step is computed once per operation.
	Double hashing only visits every slot when the capacity is prime, which is why
	callers usually size the table with util.NextPrime.
	The basic principal of an insert is:
	------------------------------------
	1) Calculate the hash value and initial index (hash % capacity) of the key
	2) Probe the slots, counting every slot that was passed over (a collision)
	3) If an empty slot is found, place the key with a frequency of one and record
	   the number of collisions, both in the slot and in the insertion-ordered log
	4) If a slot holding the same key is found, bump its frequency
	5) If capacity slots were probed without either, the table is full
	The insertion-ordered log is what the statistics snapshots are computed from, so
	a snapshot at N percent full reflects the table at the moment it held that many
	keys, not its final state.
*/
package htable
