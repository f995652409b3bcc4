// Package clickhouse assembles the packets of one executed query into results.
/*
Three strategies are provided over the same packet source:

  - NewResult drains the source and returns all rows (or columns) at once;
  - NewProgressResult is a cursor over cumulative progress which accumulates data on the side;
  - NewIterResult streams one chunk per packet without buffering.

Packets are decoded elsewhere and handed over through packet.Source.
*/
package clickhouse
